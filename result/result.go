package result

import "fmt"

// Module identifies the subsystem a result code originates from.
type Module uint32

const (
	ModuleCommon Module = 0
	ModuleFS     Module = 17
)

// Summary gives a coarse category for a result code.
type Summary uint32

const (
	SummarySuccess         Summary = 0
	SummaryNothingHappened Summary = 1
	SummaryWouldBlock      Summary = 2
	SummaryOutOfResource   Summary = 3
	SummaryNotFound        Summary = 4
	SummaryInvalidState    Summary = 5
	SummaryNotSupported    Summary = 6
	SummaryInvalidArgument Summary = 7
	SummaryWrongArgument   Summary = 8
	SummaryCanceled        Summary = 9
	SummaryStatusChanged   Summary = 10
	SummaryInternal        Summary = 11
)

// Level indicates the severity of a result code.
type Level uint32

const (
	LevelSuccess      Level = 0
	LevelInfo         Level = 1
	LevelStatus       Level = 25
	LevelTemporary    Level = 26
	LevelPermanent    Level = 27
	LevelUsage        Level = 28
	LevelReinitialize Level = 29
	LevelReset        Level = 30
	LevelFatal        Level = 31
)

// Description carries the fine-grained reason for a result code. The
// numeric values are part of the guest ABI.
type Description uint32

const (
	DescSuccess            Description = 0
	DescFSNotFound         Description = 100
	DescFSAlreadyExists    Description = 190
	DescFSInvalidOpenFlags Description = 230
	DescFSNotAFile         Description = 250
	DescTooLarge           Description = 1001
	DescNotImplemented     Description = 1012
)

// Code is a tagged guest result word. Codes are compared by field
// equality only, never by identity; two codes with the same tags are the
// same result.
type Code struct {
	Description Description
	Module      Module
	Summary     Summary
	Level       Level
}

// Success is the single well-known sentinel denoting a successful
// operation. It is the zero value of Code.
var Success = Code{}

// IsSuccess reports whether the code denotes success.
func (c Code) IsSuccess() bool {
	return c == Success
}

// IsError reports whether the code denotes a failure. It is always the
// complement of IsSuccess.
func (c Code) IsError() bool {
	return !c.IsSuccess()
}

// Raw packs the code into the guest's 32-bit result word:
// description in bits 0-9, module in bits 10-17, summary in bits 21-26
// and level in bits 27-31.
func (c Code) Raw() uint32 {
	return uint32(c.Description)&0x3FF |
		(uint32(c.Module)&0xFF)<<10 |
		(uint32(c.Summary)&0x3F)<<21 |
		(uint32(c.Level)&0x1F)<<27
}

// Error implements the error interface for host-side logging. The
// rendered string is diagnostic only; comparisons go through the tagged
// fields.
func (c Code) Error() string {
	if c.IsSuccess() {
		return "success"
	}
	return fmt.Sprintf("result 0x%08X (module=%d summary=%d level=%d description=%d)",
		c.Raw(), c.Module, c.Summary, c.Level, c.Description)
}
