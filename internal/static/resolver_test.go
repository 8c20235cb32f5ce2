package static

import "testing"

func TestImageURL(t *testing.T) {
	r := NewResolver("https://geoportal.example.com/")

	tests := []struct {
		name string
		path string
		want string // "" means nil expected
	}{
		{"simple", "news/4.png", "https://geoportal.example.com/static/news/4.png"},
		{"backslashes", `uploads\news\4.png`, "https://geoportal.example.com/static/uploads/news/4.png"},
		{"leading slash", "/products/map.jpg", "https://geoportal.example.com/static/products/map.jpg"},
		{"spaces escaped", "news/riyadh map.png", "https://geoportal.example.com/static/news/riyadh%20map.png"},
		{"blank segments dropped", "news//4.png", "https://geoportal.example.com/static/news/4.png"},
		{"empty", "", ""},
		{"whitespace only", "  ", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := r.ImageURL(tc.path)
			if tc.want == "" {
				if got != nil {
					t.Errorf("expected nil, got %q", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected %q, got nil", tc.want)
			}
			if *got != tc.want {
				t.Errorf("got  %q\nwant %q", *got, tc.want)
			}
		})
	}
}
