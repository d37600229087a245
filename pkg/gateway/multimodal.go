package gateway

import (
	"encoding/base64"
	"strings"
)

// encodeMessages rewrites user-role messages whose content is a plain string
// into multimodal content arrays: the original text first, then one part per
// attachment in declaration order. Messages without attachments (or with
// non-string content) pass through unchanged.
func encodeMessages(messages []Message, attachments []Attachment) []Message {
	if len(attachments) == 0 {
		return messages
	}

	out := make([]Message, len(messages))
	for i, m := range messages {
		text, isString := m.Content.(string)
		if m.Role != "user" || !isString {
			out[i] = m
			continue
		}

		parts := make([]Part, 0, len(attachments)+1)
		parts = append(parts, Part{Type: "text", Text: text})
		for _, a := range attachments {
			parts = append(parts, encodeAttachment(a))
		}
		out[i] = Message{Role: m.Role, Content: parts}
	}
	return out
}

// encodeAttachment builds the content part for one attachment according to
// its file type category.
func encodeAttachment(a Attachment) Part {
	b64 := base64.StdEncoding.EncodeToString(a.Data)
	dataURI := "data:" + a.MimeType + ";base64," + b64

	switch a.FileType {
	case "image":
		return Part{Type: "image_url", ImageURL: &ImageURL{URL: dataURI}}
	case "pdf", "file":
		return Part{Type: "file", File: &FilePart{Filename: a.Filename, FileData: dataURI}}
	case "audio":
		return Part{Type: "input_audio", InputAudio: &InputAudio{
			Data:   b64,
			Format: mimeSubtype(a.MimeType),
		}}
	case "video":
		return Part{Type: "video_url", VideoURL: &VideoURL{URL: dataURI}}
	default:
		return Part{Type: "text", Text: string(a.Data)}
	}
}

// mimeSubtype returns the part after the slash ("audio/mpeg" → "mpeg").
func mimeSubtype(mimeType string) string {
	if idx := strings.IndexByte(mimeType, '/'); idx >= 0 {
		return mimeType[idx+1:]
	}
	return mimeType
}
