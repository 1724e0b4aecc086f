// Package assets exposes the optional local files (profile image, résumé).
// A missing file is reported as absent, never as an error. A nil *Library
// has no files.
package assets

import (
	"io"
	"io/fs"
	"mime"
	"path"
	"time"
)

// File describes an available asset.
type File struct {
	Name        string
	Size        int64
	ModTime     time.Time
	ContentType string
}

// Library looks up assets in a read-only file system.
type Library struct {
	fsys    fs.FS
	dir     string
	profile string
	resume  string
}

// New creates a Library over fsys, which is the contents of dir. dir is only
// used in messages. A nil fsys behaves as an empty directory.
func New(fsys fs.FS, dir, profileImage, resume string) *Library {
	return &Library{fsys: fsys, dir: dir, profile: profileImage, resume: resume}
}

// ProfileImage reports the profile picture if present.
func (l *Library) ProfileImage() (File, bool) {
	if l == nil {
		return File{}, false
	}
	return l.stat(l.profile)
}

// Resume reports the résumé document if present.
func (l *Library) Resume() (File, bool) {
	if l == nil {
		return File{}, false
	}
	return l.stat(l.resume)
}

// ProfileImagePath is the expected location shown in warnings.
func (l *Library) ProfileImagePath() string {
	if l == nil {
		return ""
	}
	return path.Join(l.dir, l.profile)
}

// ResumePath is the expected location shown in warnings.
func (l *Library) ResumePath() string {
	if l == nil {
		return ""
	}
	return path.Join(l.dir, l.resume)
}

// OpenProfileImage opens the profile picture. ok is false when it is absent.
func (l *Library) OpenProfileImage() (io.ReadCloser, File, bool) {
	if l == nil {
		return nil, File{}, false
	}
	return l.open(l.profile)
}

// OpenResume opens the résumé. ok is false when it is absent.
func (l *Library) OpenResume() (io.ReadCloser, File, bool) {
	if l == nil {
		return nil, File{}, false
	}
	return l.open(l.resume)
}

func (l *Library) stat(name string) (File, bool) {
	if l.fsys == nil || name == "" || !fs.ValidPath(name) {
		return File{}, false
	}
	info, err := fs.Stat(l.fsys, name)
	if err != nil || info.IsDir() {
		return File{}, false
	}
	return fileFromInfo(name, info), true
}

func (l *Library) open(name string) (io.ReadCloser, File, bool) {
	meta, ok := l.stat(name)
	if !ok {
		return nil, File{}, false
	}
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, File{}, false
	}
	return f, meta, true
}

func fileFromInfo(name string, info fs.FileInfo) File {
	ct := mime.TypeByExtension(path.Ext(name))
	if ct == "" {
		ct = "application/octet-stream"
	}
	return File{
		Name:        path.Base(name),
		Size:        info.Size(),
		ModTime:     info.ModTime(),
		ContentType: ct,
	}
}
