package pixbuf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// ErrFormat reports a malformed PPM stream.
var ErrFormat = errors.New("pixbuf: invalid ppm")

const maxDim = 1 << 15

// WritePPM writes b as a binary PPM: "P6\n<w> <h>\n255\n" followed by one
// R, G, B byte triplet per pixel, row-major, top to bottom.
func (b *Buffer) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", b.w, b.h); err != nil {
		return err
	}
	if _, err := bw.Write(b.pix); err != nil {
		return err
	}
	return bw.Flush()
}

// ReadPPM decodes a binary PPM with maxval 255.
func ReadPPM(r io.Reader) (*Buffer, error) {
	br := bufio.NewReader(r)

	magic, err := ppmToken(br)
	if err != nil {
		return nil, err
	}
	if magic != "P6" {
		return nil, fmt.Errorf("%w: magic %q", ErrFormat, magic)
	}

	var dims [3]int
	for i := range dims {
		tok, err := ppmToken(br)
		if err != nil {
			return nil, err
		}
		if _, err := fmt.Sscanf(tok, "%d", &dims[i]); err != nil {
			return nil, fmt.Errorf("%w: header field %q", ErrFormat, tok)
		}
	}
	w, h, maxval := dims[0], dims[1], dims[2]
	if w <= 0 || h <= 0 || w > maxDim || h > maxDim {
		return nil, fmt.Errorf("%w: size %dx%d", ErrFormat, w, h)
	}
	if maxval != 255 {
		return nil, fmt.Errorf("%w: maxval %d", ErrFormat, maxval)
	}

	b := New(w, h)
	if _, err := io.ReadFull(br, b.pix); err != nil {
		return nil, fmt.Errorf("%w: pixel data: %v", ErrFormat, err)
	}
	return b, nil
}

// ppmToken reads one whitespace-separated header token, skipping comments.
// The single whitespace byte after the token is consumed.
func ppmToken(br *bufio.Reader) (string, error) {
	var sb strings.Builder
	for {
		c, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", fmt.Errorf("%w: header: %v", ErrFormat, err)
		}
		switch {
		case c == '#' && sb.Len() == 0:
			if _, err := br.ReadString('\n'); err != nil {
				return "", fmt.Errorf("%w: header comment: %v", ErrFormat, err)
			}
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			if sb.Len() > 0 {
				return sb.String(), nil
			}
		default:
			sb.WriteByte(c)
		}
	}
}

// Save writes b to path. ".ppm" (or no extension) produces the raw dump;
// any other extension is encoded by imaging (png, jpg, gif, tif, bmp).
func (b *Buffer) Save(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" || ext == ".ppm" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("save %q: %w", path, err)
		}
		if err := b.WritePPM(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("save %q: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("save %q: %w", path, err)
		}
		return nil
	}

	if err := imaging.Save(b, path); err != nil {
		return fmt.Errorf("save %q: %w", path, err)
	}
	return nil
}

// Load reads a buffer saved by Save.
func Load(path string) (*Buffer, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" || ext == ".ppm" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("load %q: %w", path, err)
		}
		defer f.Close()
		b, err := ReadPPM(f)
		if err != nil {
			return nil, fmt.Errorf("load %q: %w", path, err)
		}
		return b, nil
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", path, err)
	}
	return FromImage(img), nil
}
