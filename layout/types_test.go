package layout

import "testing"

func TestStyleValidate(t *testing.T) {
	ok := Style{Width: 1920, Height: 400, OutlineWidth: 2}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, bad := range []Style{
		{Width: 0, Height: 400},
		{Width: 1920, Height: -1},
		{Width: 10, Height: 10, OutlineWidth: -1},
	} {
		if err := bad.Validate(); err == nil {
			t.Fatalf("expected validation error for %+v", bad)
		}
	}
}

func TestStyleHasOutline(t *testing.T) {
	black := Color{A: 60}
	cases := []struct {
		style Style
		want  bool
	}{
		{Style{OutlineColor: &black, OutlineWidth: 2}, true},
		{Style{OutlineColor: &black, OutlineWidth: 0}, false},
		{Style{OutlineColor: nil, OutlineWidth: 2}, false},
	}
	for i, tc := range cases {
		if got := tc.style.HasOutline(); got != tc.want {
			t.Fatalf("case %d: HasOutline=%v want %v", i, got, tc.want)
		}
	}
}

func TestFontCandidatePlatforms(t *testing.T) {
	all := FontCandidate{Src: "arial.ttf"}
	if !all.AppliesTo("linux") || !all.AppliesTo("windows") {
		t.Fatalf("candidate without platforms must apply everywhere")
	}
	mac := FontCandidate{Src: "/System/Library/Fonts/Supplemental/Arial.ttf", Platforms: []string{"darwin"}}
	if mac.AppliesTo("linux") {
		t.Fatalf("darwin-only candidate applied to linux")
	}
	if !mac.AppliesTo("darwin") {
		t.Fatalf("darwin-only candidate rejected on darwin")
	}
	if got := mac.Name(); got != mac.Src {
		t.Fatalf("unlabelled candidate should report its src, got %q", got)
	}
}
