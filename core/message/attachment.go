package message

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DefaultContentType is used when the content type can't be detected.
const DefaultContentType = "application/octet-stream"

// allowedExtensions lists the file types Postmark accepts as attachments.
var allowedExtensions = map[string]struct{}{}

func init() {
	for _, ext := range []string{
		"gif", "jpeg", "jpg", "png", "swf", "dcr", "tiff", "bmp", "ico", "page-icon",
		"wav", "mp3", "flv", "avi", "mpg", "wmv", "rm", "mov", "3gp", "mp4", "m4a",
		"ogv", "txt", "rtf", "html", "xml", "ics", "pdf", "log", "csv", "docx",
		"dotx", "pptx", "xlsx", "odt", "psd", "ai", "vcf", "mobi", "epub", "pgp",
		"ods", "wps", "pages", "prn", "eps", "license", "zip", "dcm", "enc", "cdr",
		"css", "pst", "mobileconfig", "eml", "gpx", "kml", "kmz", "msl", "rb", "js",
		"java", "c", "cpp", "py", "php", "fl", "jar", "ttf", "vpv", "iif", "timo",
		"autorit", "cathodelicense", "itn", "freshroute",
	} {
		allowedExtensions[ext] = struct{}{}
	}
}

// Attachment is a file in its wire form: Content holds base64 data.
type Attachment struct {
	Name        string `json:"Name"`
	Content     string `json:"Content"`
	ContentType string `json:"ContentType"`
	ContentID   string `json:"ContentID,omitempty"`
}

// AllowedExtension reports whether files with the given name may be attached.
func AllowedExtension(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	_, ok := allowedExtensions[ext]
	return ok
}

// NewAttachment builds an attachment from raw bytes. An empty contentType is
// detected from the file extension first, then from the content itself.
func NewAttachment(name string, data []byte, contentType string) (Attachment, error) {
	if err := checkName(name); err != nil {
		return Attachment{}, err
	}
	if contentType == "" {
		contentType = detectContentType(name, data)
	}
	return Attachment{
		Name:        name,
		Content:     base64.StdEncoding.EncodeToString(data),
		ContentType: contentType,
	}, nil
}

// NewInlineAttachment builds an attachment that can be referenced from the
// HTML body. contentID must be an RFC 2392 URL, e.g. "cid:logo.png".
func NewInlineAttachment(name string, data []byte, contentType, contentID string) (Attachment, error) {
	if err := checkContentID(contentID); err != nil {
		return Attachment{}, err
	}
	a, err := NewAttachment(name, data, contentType)
	if err != nil {
		return Attachment{}, err
	}
	a.ContentID = contentID
	return a, nil
}

// Validate checks an attachment already in wire form.
func (a Attachment) Validate() error {
	if err := checkName(a.Name); err != nil {
		return err
	}
	if a.ContentType == "" {
		return fmt.Errorf("%w: %s: content type is required", ErrInvalidAttachment, a.Name)
	}
	if _, err := base64.StdEncoding.DecodeString(a.Content); err != nil {
		return fmt.Errorf("%w: %s: content must be base64 encoded", ErrInvalidAttachment, a.Name)
	}
	if a.ContentID != "" {
		return checkContentID(a.ContentID)
	}
	return nil
}

// Attach adds raw data as an attachment.
func (m *Message) Attach(name string, data []byte, contentType string) error {
	a, err := NewAttachment(name, data, contentType)
	if err != nil {
		return err
	}
	m.Attachments = append(m.Attachments, a)
	return nil
}

// AttachInline adds raw data as an attachment referenced by contentID.
func (m *Message) AttachInline(name string, data []byte, contentType, contentID string) error {
	a, err := NewInlineAttachment(name, data, contentType, contentID)
	if err != nil {
		return err
	}
	m.Attachments = append(m.Attachments, a)
	return nil
}

// AttachFile reads the file at path and attaches it under its base name.
func (m *Message) AttachFile(path, contentType string) error {
	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) || strings.HasSuffix(path, string(filepath.Separator)) {
		return fmt.Errorf("%w: filename not found in path: %s", ErrInvalidAttachment, path)
	}
	if err := checkName(name); err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAttachment, err)
	}
	return m.Attach(name, data, contentType)
}

func checkName(name string) error {
	ext := filepath.Ext(name)
	if ext == "" || ext == "." {
		return fmt.Errorf("%w: %q requires an extension", ErrInvalidAttachment, name)
	}
	if !AllowedExtension(name) {
		return fmt.Errorf("%w: extension %q is not allowed", ErrInvalidAttachment, strings.ToLower(ext))
	}
	return nil
}

func checkContentID(id string) error {
	if !strings.HasPrefix(id, "cid:") {
		return fmt.Errorf("%w: content id must be an RFC-2392 URL starting with \"cid:\"", ErrInvalidAttachment)
	}
	return nil
}

func detectContentType(name string, data []byte) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); ct != "" {
		return ct
	}
	if len(data) > 0 {
		return mimetype.Detect(data).String()
	}
	return DefaultContentType
}
