package cjk

import "testing"

func TestIs(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'中', true},
		{'你', true},
		{'。', true},  // CJK punctuation counts as CJK
		{'！', true},  // fullwidth form
		{'〇', true},
		{'a', false},
		{'1', false},
		{' ', false},
		{'é', false},
	}
	for _, tt := range tests {
		if got := Is(tt.r); got != tt.want {
			t.Errorf("Is(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestIsPunct(t *testing.T) {
	for _, r := range "。、！？（）：" {
		if !IsPunct(r) {
			t.Errorf("IsPunct(%q) = false, want true", r)
		}
	}
	for _, r := range "中文abc" {
		if IsPunct(r) {
			t.Errorf("IsPunct(%q) = true, want false", r)
		}
	}
}

func TestIsLine(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"你好世界", true},
		{"你好。", true},
		{"", false},
		{"hello", false},
		{"你好world", false}, // mixed script drops the whole line
		{"第3章", false},
	}
	for _, tt := range tests {
		if got := IsLine(tt.text); got != tt.want {
			t.Errorf("IsLine(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestStripTrailing(t *testing.T) {
	tests := []struct {
		text, want string
	}{
		{"你好。", "你好"},
		{"你好！！", "你好"},
		{"你好", "你好"},
		{"你好abc", "你好"},
		{"。。。", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StripTrailing(tt.text); got != tt.want {
			t.Errorf("StripTrailing(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestLongestRun(t *testing.T) {
	tests := []struct {
		text string
		from int
		want string
	}{
		{"你好世界", 0, "你好世界"},
		{"你好世界", 2, "世界"},
		{"你好。世界", 0, "你好"}, // run stops at punctuation
		{"你好。世界", 3, "世界"},
		{"你好", 5, ""},
		{"你好", -1, ""},
	}
	for _, tt := range tests {
		if got := LongestRun(tt.text, tt.from); got != tt.want {
			t.Errorf("LongestRun(%q, %d) = %q, want %q", tt.text, tt.from, got, tt.want)
		}
	}
}
