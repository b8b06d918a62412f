package manifest

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/mermaid/pkg/errors"
	"github.com/matzehuels/mermaid/pkg/httputil"
)

// Format identifies the encoding of a manifest document.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ValidFormats contains all supported manifest formats.
var ValidFormats = map[Format]bool{
	FormatTOML: true,
	FormatJSON: true,
}

// DetectFormat guesses the manifest format from the source name. Sources
// ending in .json decode as JSON; everything else, including stdin and
// extensionless URLs, decodes as TOML.
func DetectFormat(source string) Format {
	if strings.EqualFold(filepath.Ext(source), ".json") {
		return FormatJSON
	}
	return FormatTOML
}

// Decode parses raw manifest data in the given format. JSON input is
// checked against the manifest schema before unmarshalling. TOML input is
// decoded leniently; unknown keys are ignored and structural problems
// surface during Validate and Build.
func Decode(data []byte, format Format) (*Manifest, error) {
	var m Manifest
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse TOML manifest")
		}
	case FormatJSON:
		if err := ValidateJSON(data); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse JSON manifest")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown manifest format %q", format)
	}
	return &m, nil
}

// ReadSource loads raw manifest bytes from a source reference. The source
// may be "-" for stdin, an http(s) URL, or a local file path.
func ReadSource(ctx context.Context, source string) ([]byte, error) {
	if err := errors.ValidateSourcePath(source); err != nil {
		return nil, err
	}

	switch {
	case source == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSource, err, "read stdin")
		}
		return data, nil

	case errors.IsURL(source):
		data, err := httputil.Fetch(ctx, nil, source)
		if err != nil {
			if stderrors.Is(err, httputil.ErrNotFound) {
				return nil, errors.Wrap(errors.ErrCodeNotFound, err, "manifest not found at %s", source)
			}
			return nil, errors.Wrap(errors.ErrCodeNetwork, err, "fetch manifest from %s", source)
		}
		return data, nil

	default:
		data, err := os.ReadFile(source)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest file %s not found", source)
			}
			return nil, errors.Wrap(errors.ErrCodeInvalidSource, err, "read manifest file %s", source)
		}
		return data, nil
	}
}

// Load reads a manifest from a source reference and decodes it using the
// format implied by the source name.
func Load(ctx context.Context, source string) (*Manifest, error) {
	data, err := ReadSource(ctx, source)
	if err != nil {
		return nil, err
	}
	m, err := Decode(data, DetectFormat(source))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", source, err)
	}
	return m, nil
}
