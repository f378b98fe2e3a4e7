// Package mimetypes decides which attachments a greeting may carry.
package mimetypes

import (
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

type MIME string

const (
	Unknown   MIME = "unknown"
	TextPlain MIME = "text/plain"

	ImagePNG  MIME = "image/png"
	ImageJPEG MIME = "image/jpeg"
	ImageGIF  MIME = "image/gif"
	ImageWEBP MIME = "image/webp"

	AudioMPEG MIME = "audio/mpeg"
	AudioOGG  MIME = "audio/ogg"
	AudioWAV  MIME = "audio/wav"

	VideoMP4  MIME = "video/mp4"
	VideoWEBM MIME = "video/webm"
)

// Matches compares a detected media type, parameters included, with an expected one.
func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

// Sniff detects the type from the content itself, never from what the client claims.
func Sniff(data []byte) MIME {
	detected := mimetype.Detect(data)
	mt, _, err := mime.ParseMediaType(detected.String())
	if err != nil {
		return Unknown
	}
	return MIME(mt)
}

// IsGreetingMedia accepts images, audio and video.
func IsGreetingMedia(m MIME) bool {
	family, _, _ := strings.Cut(string(m), "/")
	switch family {
	case "image", "audio", "video":
		return true
	}
	return false
}
