package entity

// ImageFile is an uploaded file as received from the client.
type ImageFile struct {
	Name        string // Original file name.
	ContentType string // Declared content type, informational only.
	Size        int64  // Declared size, falls back to len(Data) when zero.
	Data        []byte
}

// ByteSize returns the declared size or the payload length.
func (f *ImageFile) ByteSize() int64 {
	if f.Size > 0 {
		return f.Size
	}

	return int64(len(f.Data))
}
