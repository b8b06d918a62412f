package diagram

import "testing"

func TestNavigationString(t *testing.T) {
	tests := []struct {
		name string
		nav  Navigation
		want string
	}{
		{
			name: "Plain",
			nav:  Navigate("https://example.com"),
			want: ` "https://example.com"`,
		},
		{
			name: "NewTab",
			nav:  Navigate("https://example.com").NewTab(true),
			want: ` "https://example.com" _blank`,
		},
		{
			name: "Anchor",
			nav:  Navigate("https://example.com").Anchor(true),
			want: `href "https://example.com"`,
		},
		{
			name: "Full",
			nav:  Navigate("https://example.com").Anchor(true).Tooltip("Tooltip").NewTab(true),
			want: `href "https://example.com" "Tooltip" _blank`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.nav.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNavigationCopies(t *testing.T) {
	base := Navigate("https://example.com")
	withTab := base.NewTab(true)
	if base.String() == withTab.String() {
		t.Errorf("NewTab mutated the receiver: %q", base.String())
	}
}
