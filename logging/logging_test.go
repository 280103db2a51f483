package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name   string
		want   zapcore.Level
		wantOK bool
	}{
		{"trace", zapcore.DebugLevel, true},
		{"debug", zapcore.DebugLevel, true},
		{"Info", zapcore.InfoLevel, true},
		{"WARNING", zapcore.WarnLevel, true},
		{"error", zapcore.ErrorLevel, true},
		{"critical", zapcore.DPanicLevel, true},
		{"off", levelOff, true},
		{"bogus", levelOff, false},
		{"", levelOff, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLevel(tt.name)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseLevel(%q) = (%v, %v), want (%v, %v)",
					tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		class Class
		name  string
		want  bool
	}{
		{ServiceFS, "Service", true},
		{ServiceFS, "Service.FS", true},
		{Service, "Service", true},
		{Service, "Service.FS", false},
		{Class("ServiceX"), "Service", false},
		{CommonFilesystem, "Common", true},
		{Common, "Core", false},
	}

	for _, tt := range tests {
		if got := matches(tt.class, tt.name); got != tt.want {
			t.Errorf("matches(%q, %q) = %v, want %v", tt.class, tt.name, got, tt.want)
		}
	}
}

func TestRegistry_ParseFilter(t *testing.T) {
	r := NewNop()
	r.ParseFilter("*:Warning Service:Debug Loader:Error")

	tests := []struct {
		class Class
		want  zapcore.Level
	}{
		{Service, zapcore.DebugLevel},
		{ServiceFS, zapcore.DebugLevel},
		{Loader, zapcore.ErrorLevel},
		{Core, zapcore.WarnLevel},
		{Common, zapcore.WarnLevel},
	}
	for _, tt := range tests {
		if got := r.Level(tt.class); got != tt.want {
			t.Errorf("Level(%q) = %v, want %v", tt.class, got, tt.want)
		}
	}
}

func TestRegistry_ParseFilterSkipsMalformed(t *testing.T) {
	r := NewNop()
	r.ParseFilter("garbage Service.FS:Debug")

	if got := r.Level(ServiceFS); got != zapcore.DebugLevel {
		t.Errorf("Level(Service.FS) = %v, want Debug", got)
	}
	if got := r.Level(Core); got != zapcore.InfoLevel {
		t.Errorf("Level(Core) = %v, want untouched Info", got)
	}
}

func TestRegistry_ParseFilterUnknownLevelSilences(t *testing.T) {
	r := NewNop()
	r.ParseFilter("Core:Bogus")

	if got := r.Level(Core); got != levelOff {
		t.Errorf("Level(Core) = %v, want off", got)
	}
}

func TestRegistry_GetCreatesUnknownCategory(t *testing.T) {
	r := NewNop()
	lg := r.Get(Class("Debug.Emulated"))
	if lg == nil {
		t.Fatal("Get should never return nil")
	}
	if r.Get(Class("Debug.Emulated")) != lg {
		t.Error("Get should return the same logger for the same category")
	}
}
