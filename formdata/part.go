package formdata

// Kind identifies the part variant.
type Kind int

const (
	// KindText is a plain text form field.
	KindText Kind = iota
	// KindFile is a file field with a filename and raw content.
	KindFile
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// Part is one named field contributing to a multipart body.
// It is a closed two-case variant: a text field (Value) or a file field
// (FileName, ContentType, Data). Parts are plain values and are not
// modified after construction.
type Part struct {
	// Kind selects between the text and file variants.
	Kind Kind
	// Name is the form field name.
	Name string
	// Value is the field text (KindText only).
	Value string
	// FileName is the file name sent to the server (KindFile only).
	FileName string
	// ContentType is the MIME type of the file content (KindFile only).
	// If empty, application/octet-stream is used.
	ContentType string
	// Data is the raw file content (KindFile only).
	Data []byte
}

// Text creates a text field part.
func Text(name, value string) Part {
	return Part{Kind: KindText, Name: name, Value: value}
}

// File creates a file field part with the default content type.
func File(name, filename string, data []byte) Part {
	return Part{Kind: KindFile, Name: name, FileName: filename, Data: data}
}

// FileTyped creates a file field part with an explicit content type.
func FileTyped(name, filename, contentType string, data []byte) Part {
	return Part{Kind: KindFile, Name: name, FileName: filename, ContentType: contentType, Data: data}
}
