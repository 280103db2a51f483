package filesys

import "github.com/horizon-emu/horizon/result"

// The filesystem error vocabulary. These exact tag combinations are what
// emulated guest code observes; see result.Code.Raw for the packed word.
var (
	ErrNotFound = result.Code{
		Description: result.DescFSNotFound,
		Module:      result.ModuleFS,
		Summary:     result.SummaryNotFound,
		Level:       result.LevelStatus,
	}

	ErrNotAFile = result.Code{
		Description: result.DescFSNotAFile,
		Module:      result.ModuleFS,
		Summary:     result.SummaryCanceled,
		Level:       result.LevelStatus,
	}

	ErrAlreadyExists = result.Code{
		Description: result.DescFSAlreadyExists,
		Module:      result.ModuleFS,
		Summary:     result.SummaryNothingHappened,
		Level:       result.LevelStatus,
	}

	ErrInvalidOpenFlags = result.Code{
		Description: result.DescFSInvalidOpenFlags,
		Module:      result.ModuleFS,
		Summary:     result.SummaryCanceled,
		Level:       result.LevelStatus,
	}

	ErrTooLarge = result.Code{
		Description: result.DescTooLarge,
		Module:      result.ModuleFS,
		Summary:     result.SummaryOutOfResource,
		Level:       result.LevelInfo,
	}

	ErrUnsupportedOperation = result.Code{
		Description: result.DescNotImplemented,
		Module:      result.ModuleFS,
		Summary:     result.SummaryNotSupported,
		Level:       result.LevelPermanent,
	}
)
