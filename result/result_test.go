package result

import "testing"

func TestCode_SuccessSentinel(t *testing.T) {
	if !Success.IsSuccess() {
		t.Error("Success sentinel should report IsSuccess")
	}
	if Success.IsError() {
		t.Error("Success sentinel should not report IsError")
	}
	if Success.Raw() != 0 {
		t.Errorf("Success raw word = 0x%08X, want 0", Success.Raw())
	}
}

func TestCode_ComplementaryPredicates(t *testing.T) {
	codes := []Code{
		{},
		{Description: DescFSNotFound, Module: ModuleFS, Summary: SummaryNotFound, Level: LevelStatus},
		{Description: DescTooLarge, Module: ModuleFS, Summary: SummaryOutOfResource, Level: LevelInfo},
	}
	for _, c := range codes {
		if c.IsSuccess() == c.IsError() {
			t.Errorf("IsSuccess and IsError must be complements for %v", c)
		}
	}
}

func TestCode_Raw(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want uint32
	}{
		{
			name: "not found",
			code: Code{Description: DescFSNotFound, Module: ModuleFS, Summary: SummaryNotFound, Level: LevelStatus},
			want: 0xC8804464,
		},
		{
			name: "already exists",
			code: Code{Description: DescFSAlreadyExists, Module: ModuleFS, Summary: SummaryNothingHappened, Level: LevelStatus},
			want: 0xC82044BE,
		},
		{
			name: "invalid open flags",
			code: Code{Description: DescFSInvalidOpenFlags, Module: ModuleFS, Summary: SummaryCanceled, Level: LevelStatus},
			want: 0xC92044E6,
		},
		{
			name: "not a file",
			code: Code{Description: DescFSNotAFile, Module: ModuleFS, Summary: SummaryCanceled, Level: LevelStatus},
			want: 0xC92044FA,
		},
		{
			name: "too large",
			code: Code{Description: DescTooLarge, Module: ModuleFS, Summary: SummaryOutOfResource, Level: LevelInfo},
			want: 0x086047E9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.Raw(); got != tt.want {
				t.Errorf("Raw() = 0x%08X, want 0x%08X", got, tt.want)
			}
		})
	}
}

func TestCode_FieldEquality(t *testing.T) {
	a := Code{Description: DescFSNotFound, Module: ModuleFS, Summary: SummaryNotFound, Level: LevelStatus}
	b := Code{Description: DescFSNotFound, Module: ModuleFS, Summary: SummaryNotFound, Level: LevelStatus}
	if a != b {
		t.Error("codes with identical tags must compare equal")
	}

	c := a
	c.Level = LevelInfo
	if a == c {
		t.Error("codes with different tags must not compare equal")
	}
}

func TestVal_Ok(t *testing.T) {
	v := Ok(42)
	if v.IsError() {
		t.Fatal("Ok value should not be an error")
	}
	if !v.IsSuccess() {
		t.Fatal("Ok value should be a success")
	}
	if v.Code() != Success {
		t.Errorf("Code() = %v, want Success", v.Code())
	}
	if v.Unwrap() != 42 {
		t.Errorf("Unwrap() = %d, want 42", v.Unwrap())
	}
}

func TestVal_Err(t *testing.T) {
	code := Code{Description: DescFSNotAFile, Module: ModuleFS, Summary: SummaryCanceled, Level: LevelStatus}
	v := Err[int](code)
	if !v.IsError() {
		t.Fatal("Err value should be an error")
	}
	if v.Code() != code {
		t.Errorf("Code() = %v, want %v", v.Code(), code)
	}

	defer func() {
		if recover() == nil {
			t.Error("Unwrap on a failed Val should panic")
		}
	}()
	v.Unwrap()
}

func TestVal_ErrRejectsSuccess(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Err with the success sentinel should panic")
		}
	}()
	Err[int](Success)
}
