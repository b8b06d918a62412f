package errors

import (
	"strings"
	"testing"
)

func TestValidateNodeRef(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		wantErr bool
		code    Code
	}{
		{
			name:    "simple identifier",
			ref:     "customer",
			wantErr: false,
		},
		{
			name:    "mixed case with digits",
			ref:     "Node42",
			wantErr: false,
		},
		{
			name:    "underscore and hyphen",
			ref:     "shopping_cart-v2",
			wantErr: false,
		},
		{
			name:    "empty",
			ref:     "",
			wantErr: true,
			code:    ErrCodeInvalidNode,
		},
		{
			name:    "whitespace",
			ref:     "my node",
			wantErr: true,
			code:    ErrCodeInvalidNode,
		},
		{
			name:    "punctuation",
			ref:     "node.a",
			wantErr: true,
			code:    ErrCodeInvalidNode,
		},
		{
			name:    "too long",
			ref:     strings.Repeat("a", 129),
			wantErr: true,
			code:    ErrCodeInvalidNode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNodeRef(tt.ref)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateNodeRef(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
			}
			if tt.wantErr && !Is(err, tt.code) {
				t.Errorf("ValidateNodeRef(%q) code = %v, want %v", tt.ref, GetCode(err), tt.code)
			}
		})
	}
}

func TestValidateDiagramName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "simple name",
			input:   "order-service",
			wantErr: false,
		},
		{
			name:    "name with spaces",
			input:   "Order Service Overview",
			wantErr: false,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   strings.Repeat("x", 257),
			wantErr: true,
		},
		{
			name:    "control character",
			input:   "bad\x00name",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDiagramName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDiagramName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSourcePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{
			name:    "relative path",
			path:    "diagrams/checkout.toml",
			wantErr: false,
		},
		{
			name:    "absolute path",
			path:    "/etc/mermaid/site.toml",
			wantErr: false,
		},
		{
			name:    "stdin marker",
			path:    "-",
			wantErr: false,
		},
		{
			name:    "empty",
			path:    "",
			wantErr: true,
		},
		{
			name:    "null byte",
			path:    "bad\x00path",
			wantErr: true,
		},
		{
			name:    "too long",
			path:    strings.Repeat("p", 501),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSourcePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSourcePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{
			name:    "https",
			url:     "https://example.com/diagram.toml",
			wantErr: false,
		},
		{
			name:    "http",
			url:     "http://localhost:8080/manifest",
			wantErr: false,
		},
		{
			name:    "no scheme",
			url:     "example.com/diagram.toml",
			wantErr: true,
		},
		{
			name:    "file scheme",
			url:     "file:///etc/passwd",
			wantErr: true,
		},
		{
			name:    "empty",
			url:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestIsURL(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected bool
	}{
		{
			name:     "https URL",
			source:   "https://example.com/x.toml",
			expected: true,
		},
		{
			name:     "http URL",
			source:   "http://example.com/x.toml",
			expected: true,
		},
		{
			name:     "local path",
			source:   "diagrams/x.toml",
			expected: false,
		},
		{
			name:     "stdin",
			source:   "-",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsURL(tt.source); got != tt.expected {
				t.Errorf("IsURL(%q) = %v, want %v", tt.source, got, tt.expected)
			}
		})
	}
}
