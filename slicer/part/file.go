package part

import (
	"io"
	"os"
	"path/filepath"

	"github.com/freakmaxi/kertish-slicer/basics/errors"
)

// Writer is the part file in creation. The header is already written when it is returned
// from Create, the rest of the writes are payload
type Writer struct {
	inner  *os.File
	header *Header
	path   string
}

// Create creates the part file in the folder for the index. Existing files are never
// overwritten, os.ErrExist is returned instead
func Create(folder string, index uint32) (*Writer, error) {
	partPath := filepath.Join(folder, Name(index))

	f, err := os.OpenFile(partPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
	if err != nil {
		return nil, err
	}

	w := &Writer{
		inner:  f,
		header: NewHeader(index),
		path:   partPath,
	}

	if err := w.header.Save(f); err != nil {
		_ = f.Close()
		return nil, err
	}

	return w, nil
}

func (w *Writer) Index() uint32 {
	return w.header.Index()
}

func (w *Writer) Path() string {
	return w.path
}

func (w *Writer) Write(data []byte) (int, error) {
	return w.inner.Write(data)
}

func (w *Writer) Close() error {
	return w.inner.Close()
}

var _ io.WriteCloser = &Writer{}

// ReadHeader reads only the header of the part file and collects its size
func ReadHeader(partPath string) (*Part, error) {
	f, err := os.OpenFile(partPath, os.O_RDONLY, 0666)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	if info.Size() < HeaderSize {
		return nil, errors.ErrMalformedPart
	}

	header := &Header{}
	if err := header.Load(f); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, errors.ErrMalformedPart
		}
		return nil, err
	}

	return &Part{
		Index: header.Index(),
		Path:  partPath,
		Size:  info.Size(),
	}, nil
}

// Reader streams the payload of the part file, the header is skipped
type Reader struct {
	inner *os.File
}

// Open opens the part file positioned at the beginning of the payload
func Open(partPath string) (*Reader, error) {
	f, err := os.OpenFile(partPath, os.O_RDONLY, 0666)
	if err != nil {
		return nil, err
	}

	if _, err := f.Seek(HeaderSize, io.SeekStart); err != nil {
		_ = f.Close()
		return nil, err
	}

	return &Reader{inner: f}, nil
}

func (r *Reader) Read(data []byte) (int, error) {
	return r.inner.Read(data)
}

func (r *Reader) Close() error {
	return r.inner.Close()
}

var _ io.ReadCloser = &Reader{}

// Traverse calls the fileHandler for every part file placed directly in the folder
func Traverse(folder string, fileHandler func(partPath string) error) error {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() || !IsPartFile(entry.Name()) {
			continue
		}

		if err := fileHandler(filepath.Join(folder, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}
