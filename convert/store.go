package convert

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// Store is the file system seen by the converter. Paths may be plain local
// paths or any URL the backing implementation understands.
type Store interface {
	// List returns the paths of regular files directly under dir whose
	// names end with suffix, sorted.
	List(ctx context.Context, dir, suffix string) ([]string, error)
	Exists(ctx context.Context, path string) (bool, error)
	Read(ctx context.Context, path string) ([]byte, error)
	// Write replaces path with data in a single upload.
	Write(ctx context.Context, path string, data []byte) error
}

// AFSStore implements Store on top of viant/afs, so local directories,
// mem:// and any registered cloud scheme work alike.
type AFSStore struct {
	fs afs.Service
}

// NewAFSStore wraps fs; nil means afs.New().
func NewAFSStore(fs afs.Service) *AFSStore {
	if fs == nil {
		fs = afs.New()
	}
	return &AFSStore{fs: fs}
}

// List returns matching file paths under dir, sorted by name.
func (s *AFSStore) List(ctx context.Context, dir, suffix string) ([]string, error) {
	objects, err := s.fs.List(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var paths []string
	for _, obj := range objects {
		if obj.IsDir() || !strings.HasSuffix(obj.Name(), suffix) {
			continue
		}
		paths = append(paths, localPath(obj.URL()))
	}
	sort.Strings(paths)

	return paths, nil
}

// Exists reports whether path is present.
func (s *AFSStore) Exists(ctx context.Context, path string) (bool, error) {
	ok, err := s.fs.Exists(ctx, path)
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", path, err)
	}
	return ok, nil
}

// Read downloads the whole content of path.
func (s *AFSStore) Read(ctx context.Context, path string) ([]byte, error) {
	data, err := s.fs.DownloadWithURL(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// Write uploads data to path, replacing any previous content.
func (s *AFSStore) Write(ctx context.Context, path string, data []byte) error {
	if err := s.fs.Upload(ctx, path, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// localPath strips the file:// scheme afs adds to local listings so paths
// in logs and reports look like the ones the user passed in.
func localPath(URL string) string {
	if url.Scheme(URL, file.Scheme) == file.Scheme {
		return url.Path(URL)
	}
	return URL
}
