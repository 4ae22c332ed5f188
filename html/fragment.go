package html

import (
	"net/url"
	"strconv"
	"strings"
)

// Default iframe and Flash object dimensions.
const (
	DefaultWidth  = 600
	DefaultHeight = 400
)

const (
	googleViewerURL = "https://docs.google.com/viewer"
	iframeStyle     = "border:none;overflow:hidden;"

	flashClassID    = "clsid:D27CDB6E-AE6D-11cf-96B8-444553540000"
	flashCodebase   = "http://download.macromedia.com/pub/shockwave/cabs/flash/swflash.cab#version=6,0,40,0"
	flashPluginPage = "http://www.macromedia.com/go/getflashplayer"
	flashMIME       = "application/x-shockwave-flash"
)

// Video renders a <video> element with controls and one <source> per source.
// Zero width or height and an empty poster are omitted.
func Video(poster string, sources []string, width, height int) string {
	var sb strings.Builder
	writeElement(&sb, "video", Attributes{
		Attr("controls", Flag()),
		Attr("poster", optional(poster)),
		Attr("width", Int(width)),
		Attr("height", Int(height)),
	})
	writeSources(&sb, sources)
	sb.WriteString("</video>")
	return sb.String()
}

// Audio renders an <audio> element with controls and one <source> per source.
func Audio(sources []string) string {
	var sb strings.Builder
	writeElement(&sb, "audio", Attributes{Attr("controls", Flag())})
	writeSources(&sb, sources)
	sb.WriteString("</audio>")
	return sb.String()
}

func writeSources(sb *strings.Builder, sources []string) {
	for _, src := range sources {
		writeElement(sb, "source", Attributes{Attr("src", Text(src))})
	}
}

// Image renders an <img> element. Zero width or height is omitted.
func Image(src, alt string, width, height int) string {
	return Element("img", Attributes{
		Attr("src", Text(src)),
		Attr("alt", Text(alt)),
		Attr("width", Int(width)),
		Attr("height", Int(height)),
	})
}

// Dimension is a CSS length used for iframe sizes. The zero value selects
// the default size.
type Dimension struct {
	css string
}

// Px returns a pixel dimension. Px(0) is the zero Dimension.
func Px(n int) Dimension {
	if n == 0 {
		return Dimension{}
	}
	return Dimension{css: strconv.Itoa(n) + "px"}
}

// CSS returns a dimension used verbatim, such as "100%" or "20em".
func CSS(s string) Dimension {
	return Dimension{css: s}
}

// String returns the CSS length, or "" for the zero Dimension.
func (d Dimension) String() string {
	return d.css
}

func (d Dimension) or(def int) string {
	if d.css == "" {
		return strconv.Itoa(def) + "px"
	}
	return d.css
}

// Iframe renders a borderless <iframe>. Zero dimensions default to
// 600px by 400px. extraStyle is appended to the inline style.
func Iframe(src string, width, height Dimension, extraStyle string) string {
	style := iframeStyle +
		"width:" + width.or(DefaultWidth) + ";" +
		"height:" + height.or(DefaultHeight) + ";" +
		extraStyle

	return Element("iframe", Attributes{
		Attr("src", Text(src)),
		Attr("frameborder", Text("0")),
		Attr("allowTransparency", Text("true")),
		Attr("style", Text(style)),
	}) + "</iframe>"
}

// GoogleViewer renders a 600x600 iframe showing src in the Google Docs viewer.
func GoogleViewer(src string) string {
	q := url.Values{}
	q.Set("url", src)
	q.Set("embedded", "true")
	return Iframe(googleViewerURL+"?"+q.Encode(), Px(600), Px(600), "")
}

// Flash renders a legacy <object>/<embed> pair for a Flash movie.
// Zero dimensions default to 600x400.
func Flash(src string, width, height int) string {
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}

	var sb strings.Builder
	writeElement(&sb, "object", Attributes{
		Attr("width", Int(width)),
		Attr("height", Int(height)),
		Attr("classid", Text(flashClassID)),
		Attr("codebase", Text(flashCodebase)),
	})
	writeElement(&sb, "param", Attributes{Attr("name", Text("movie")), Attr("value", Text(src))})
	writeElement(&sb, "param", Attributes{Attr("name", Text("allowFullScreen")), Attr("value", Text("true"))})
	writeElement(&sb, "param", Attributes{Attr("name", Text("allowScriptAccess")), Attr("value", Text("always"))})
	writeElement(&sb, "embed", Attributes{
		Attr("src", Text(src)),
		Attr("width", Int(width)),
		Attr("height", Int(height)),
		Attr("type", Text(flashMIME)),
		Attr("allowFullScreen", Text("true")),
		Attr("allowScriptAccess", Text("always")),
		Attr("pluginspage", Text(flashPluginPage)),
	})
	sb.WriteString("</embed></object>")
	return sb.String()
}
