package main_test

import (
	"testing"

	main "github.com/fwojciec/embedkit/cmd/embedkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCmds_Run(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cmd  interface {
			Run(*main.Dependencies) error
		}
		want string
	}{
		{
			name: "image",
			cmd:  &main.RenderImageCmd{Src: "a.png", Alt: "A"},
			want: `<img src="a.png" alt="A">`,
		},
		{
			name: "video",
			cmd:  &main.RenderVideoCmd{Sources: []string{"a.mp4"}, Poster: "p.jpg", Width: 640},
			want: `<video controls poster="p.jpg" width="640"><source src="a.mp4"></video>`,
		},
		{
			name: "audio",
			cmd:  &main.RenderAudioCmd{Sources: []string{"a.mp3"}},
			want: `<audio controls><source src="a.mp3"></audio>`,
		},
		{
			name: "iframe with pixel and CSS sizes",
			cmd:  &main.RenderIframeCmd{Src: "http://x", Width: "320", Height: "50%"},
			want: `<iframe src="http://x" frameborder="0" allowTransparency="true" style="border:none;overflow:hidden;width:320px;height:50%;"></iframe>`,
		},
		{
			name: "iframe trims CSS sizes from flags",
			cmd:  &main.RenderIframeCmd{Src: "http://x", Width: " 20em ", Height: "10"},
			want: `<iframe src="http://x" frameborder="0" allowTransparency="true" style="border:none;overflow:hidden;width:20em;height:10px;"></iframe>`,
		},
		{
			name: "iframe with defaults",
			cmd:  &main.RenderIframeCmd{Src: "http://x", Width: "0"},
			want: `<iframe src="http://x" frameborder="0" allowTransparency="true" style="border:none;overflow:hidden;width:600px;height:400px;"></iframe>`,
		},
		{
			name: "google",
			cmd:  &main.RenderGoogleCmd{Src: "http://x/a.pdf"},
			want: `<iframe src="https://docs.google.com/viewer?embedded=true&amp;url=http%3A%2F%2Fx%2Fa.pdf" frameborder="0" allowTransparency="true" style="border:none;overflow:hidden;width:600px;height:600px;"></iframe>`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			deps, stdout, _ := newDeps("")

			err := tt.cmd.Run(deps)

			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", stdout.String())
		})
	}

	t.Run("flash", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps("")

		err := (&main.RenderFlashCmd{Src: "m.swf"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `<object width="600" height="400"`)
		assert.Contains(t, stdout.String(), `<embed src="m.swf"`)
	})
}
