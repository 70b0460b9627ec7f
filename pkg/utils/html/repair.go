// ABOUTME: HTML repair collaborator that turns possibly broken markup into a well-formed document
// ABOUTME: Default implementation parses with goquery (x/net/html) and renders XHTML-style output

package html

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

var (
	// ErrNoBody is returned when repaired markup carries no <body> element.
	ErrNoBody = errors.New("repaired markup has no body element")

	// ErrUnsupportedEncoding is returned for an unknown RepairConfig.Encoding label.
	ErrUnsupportedEncoding = errors.New("unsupported character encoding")
)

// RepairConfig controls how a Repairer renders its output.
type RepairConfig struct {
	// Encoding is the character encoding label of the input bytes. Output is always UTF-8.
	Encoding string

	// XHTML renders void elements self-closed, e.g. <br/>.
	XHTML bool

	// OmitDoctype drops any doctype from the output.
	OmitDoctype bool

	// NumericEntities writes non-breaking spaces as &#160;.
	NumericEntities bool
}

// DefaultRepairConfig is UTF-8, XHTML, no doctype, numeric entities.
func DefaultRepairConfig() RepairConfig {
	return RepairConfig{
		Encoding:        "utf-8",
		XHTML:           true,
		OmitDoctype:     true,
		NumericEntities: true,
	}
}

// Repairer converts possibly malformed markup into a well-formed document
// wrapped in <html><body>...</body></html>.
type Repairer interface {
	Repair(src []byte, cfg RepairConfig) ([]byte, error)
}

// RepairerFunc adapts a function to the Repairer interface.
type RepairerFunc func(src []byte, cfg RepairConfig) ([]byte, error)

// Repair calls f(src, cfg).
func (f RepairerFunc) Repair(src []byte, cfg RepairConfig) ([]byte, error) {
	return f(src, cfg)
}

// RepairError reports a failed repair step.
type RepairError struct {
	Stage string
	Err   error
}

// Error implements the error interface
func (e *RepairError) Error() string {
	return fmt.Sprintf("html repair failed during %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying cause
func (e *RepairError) Unwrap() error {
	return e.Err
}

// IsRepairError checks if an error is a RepairError
func IsRepairError(err error) bool {
	var repairErr *RepairError
	return errors.As(err, &repairErr)
}

// GoqueryRepairer repairs markup by parsing it into a goquery document and rendering it back.
type GoqueryRepairer struct{}

// NewGoqueryRepairer creates the default repairer
func NewGoqueryRepairer() *GoqueryRepairer {
	return &GoqueryRepairer{}
}

var voidSelfClosed = regexp.MustCompile(`<(area|base|br|col|embed|hr|img|input|keygen|link|meta|param|source|track|wbr)([^>]*)/>`)

// Repair implements Repairer
func (r *GoqueryRepairer) Repair(src []byte, cfg RepairConfig) ([]byte, error) {
	reader, err := decodeInput(bytes.NewReader(src), cfg.Encoding)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse markup: %w", err)
	}

	root := doc.Nodes[0]
	if cfg.OmitDoctype {
		for c := root.FirstChild; c != nil; {
			next := c.NextSibling
			if c.Type == xhtml.DoctypeNode {
				root.RemoveChild(c)
			}
			c = next
		}
	}

	var buf bytes.Buffer
	if err := xhtml.Render(&buf, root); err != nil {
		return nil, fmt.Errorf("failed to render markup: %w", err)
	}

	out := buf.Bytes()
	if !cfg.XHTML {
		out = voidSelfClosed.ReplaceAll(out, []byte("<$1$2>"))
	}
	if cfg.NumericEntities {
		out = bytes.ReplaceAll(out, []byte("\u00a0"), []byte("&#160;"))
	}
	return out, nil
}

func decodeInput(r io.Reader, label string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "", "utf-8", "utf8":
		return r, nil
	}
	decoded, err := charset.NewReaderLabel(label, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, label)
	}
	return decoded, nil
}

// BodyContents returns the raw inner markup of the first <body> element in doc.
func BodyContents(doc []byte) (string, error) {
	z := xhtml.NewTokenizer(bytes.NewReader(doc))
	inBody := false
	var b strings.Builder
	for {
		tt := z.Next()
		raw := append([]byte(nil), z.Raw()...)
		switch tt {
		case xhtml.ErrorToken:
			if z.Err() != io.EOF {
				return "", z.Err()
			}
			if !inBody {
				return "", ErrNoBody
			}
			return b.String(), nil
		case xhtml.StartTagToken:
			if !inBody {
				if name, _ := z.TagName(); string(name) == "body" {
					inBody = true
					continue
				}
			}
		case xhtml.EndTagToken:
			if inBody {
				if name, _ := z.TagName(); string(name) == "body" {
					return b.String(), nil
				}
			}
		}
		if inBody {
			b.Write(raw)
		}
	}
}
