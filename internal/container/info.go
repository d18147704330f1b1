package container

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FileType distinguishes the two supported on-disk formats, inferred from
// the filename extension.
type FileType int

const (
	FileTypeUnknown FileType = iota
	FileTypeBMP
	FileTypeYUV
)

// sequenceDigits is the fixed width of frame numbers in filename
// sequences, as in frame00000.bmp.
const sequenceDigits = 5

func (t FileType) String() string {
	switch t {
	case FileTypeBMP:
		return "bmp"
	case FileTypeYUV:
		return "yuv"
	default:
		return "unknown"
	}
}

// Extension returns the filename extension for the type, dot included.
func (t FileType) Extension() string {
	switch t {
	case FileTypeBMP:
		return ".bmp"
	case FileTypeYUV:
		return ".yuv"
	default:
		return ""
	}
}

// DetectFileType infers the file format from the path's extension.
func DetectFileType(path string) FileType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return FileTypeBMP
	case ".yuv":
		return FileTypeYUV
	default:
		return FileTypeUnknown
	}
}

// ErrNoFrames is returned when a probe finds no readable frames.
var ErrNoFrames = errors.New("container: no frames found")

// ErrTrailingBytes is returned when a raw YUV file's size is not an exact
// multiple of the frame size, which usually means wrong dimensions or an
// unexpected header.
var ErrTrailingBytes = errors.New("container: YUV file size is not a whole number of frames")

// FileInfo describes an input file or filename sequence after probing.
//
// A multi-file sequence (trailing digits in the name) reports its length
// in Frames, starting at StartFrame. A single raw YUV file holding several
// concatenated frames reports their count in SubFrames instead. The two
// are mutually exclusive: sequences of multi-frame YUV files are not
// supported.
type FileInfo struct {
	Type FileType

	// Base is the path with any trailing frame digits and the extension
	// stripped, suitable for rebuilding sequence member names.
	Base string

	StartFrame int
	Frames     int
	SubFrames  int
}

// SequencePath rebuilds the path of one member of a filename sequence.
func (fi *FileInfo) SequencePath(n int) string {
	return fmt.Sprintf("%s%0*d%s", fi.Base, sequenceDigits, n, fi.Type.Extension())
}

// SplitSequenceName separates a path into its base and any run of
// trailing digits before the extension. frame00012.bmp splits into
// "frame" and 12; plain.bmp has no digits.
func SplitSequenceName(path string) (base string, start int, numbered bool) {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)

	i := len(stem)
	for i > 0 && stem[i-1] >= '0' && stem[i-1] <= '9' {
		i--
	}
	if i == len(stem) {
		return stem, 0, false
	}
	start, _ = strconv.Atoi(stem[i:])
	return stem[:i], start, true
}

// Probe inspects an input path and reports how many frames it provides.
//
// A name with trailing digits is treated as the first member of a
// fixed-width numbered sequence; consecutive members are counted until one
// is missing. A plain name is a single file, except that a raw YUV file
// may contain several concatenated frames, counted by dividing the file
// size by the frame size. Width and height are required for YUV inputs
// and ignored for BMP.
func Probe(path string, width, height int) (*FileInfo, error) {
	info := &FileInfo{Type: DetectFileType(path)}

	base, start, numbered := SplitSequenceName(path)
	if numbered {
		info.Base = base
		info.StartFrame = start
		for {
			if _, err := os.Stat(info.SequencePath(start + info.Frames)); err != nil {
				break
			}
			info.Frames++
		}
		if info.Frames == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoFrames, path)
		}
		return info, nil
	}

	info.Base = base
	info.Frames = 1

	if info.Type == FileTypeYUV {
		if width <= 0 || height <= 0 {
			return nil, fmt.Errorf("container: dimensions required to probe raw YUV file %s", path)
		}
		st, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("container: %w", err)
		}
		frameSize := YUVFrameSize(width, height)
		if st.Size()%frameSize != 0 {
			return nil, fmt.Errorf("%w: %s (%d bytes, frame size %d)",
				ErrTrailingBytes, path, st.Size(), frameSize)
		}
		info.SubFrames = int(st.Size() / frameSize)
		if info.SubFrames == 0 {
			return nil, fmt.Errorf("%w: %s is empty", ErrNoFrames, path)
		}
	}
	return info, nil
}

// TotalFrames reports how many frames the probed input yields overall.
func (fi *FileInfo) TotalFrames() int {
	if fi.SubFrames > 0 {
		return fi.SubFrames
	}
	return fi.Frames
}
