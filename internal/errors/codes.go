package errors

// Error codes for yulfmt diagnostics
// These codes are used in error messages and editor integrations
// to provide consistent error identification across the toolchain.
//
// Error code ranges:
// E0001-E0099: Call resolution errors
// E0100-E0199: Scanner and parser errors
// E0900-E0999: Tooling errors
// W0001-W0099: Warning codes

const (
	// E0001: Call to a name that is neither a builtin nor a declared function
	ErrorUndefinedFunction = "E0001"

	// E0013: Function call argument or return count errors
	ErrorInvalidArguments = "E0013"

	// E0100: Byte sequence that matches no token rule
	ErrorLexical = "E0100"

	// E0101: Grammar violations
	ErrorSyntax = "E0101"

	// E0102: More than one default case in a switch
	ErrorDuplicateDefault = "E0102"

	// E0900: Unrecognized EVM version string
	ErrorUnknownVersion = "E0900"

	// E0901: Printed output failed to reproduce the parsed program
	ErrorVerify = "E0901"

	// W0001: Switch statement with only a default case
	WarningDefaultOnlySwitch = "W0001"
)

// Kind classifies what went wrong, independently of severity.
type Kind int

const (
	UnknownVersion Kind = iota + 1
	LexError
	SyntaxError
	UndeclaredIdentifier
	DuplicateDefault
	ArityMismatch
	VerifyError
)

func (k Kind) String() string {
	switch k {
	case UnknownVersion:
		return "UnknownVersion"
	case LexError:
		return "LexError"
	case SyntaxError:
		return "SyntaxError"
	case UndeclaredIdentifier:
		return "UndeclaredIdentifier"
	case DuplicateDefault:
		return "DuplicateDefault"
	case ArityMismatch:
		return "ArityMismatch"
	case VerifyError:
		return "VerifyError"
	default:
		return "Unknown"
	}
}

// Code returns the default error code of the kind.
func (k Kind) Code() string {
	switch k {
	case UnknownVersion:
		return ErrorUnknownVersion
	case LexError:
		return ErrorLexical
	case SyntaxError:
		return ErrorSyntax
	case UndeclaredIdentifier:
		return ErrorUndefinedFunction
	case DuplicateDefault:
		return ErrorDuplicateDefault
	case ArityMismatch:
		return ErrorInvalidArguments
	case VerifyError:
		return ErrorVerify
	default:
		return ""
	}
}

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUndefinedFunction:
		return "Function is called but is neither a builtin nor declared in scope"
	case ErrorInvalidArguments:
		return "Function call has the wrong number of arguments or return values"
	case ErrorLexical:
		return "Input contains characters that do not form a valid token"
	case ErrorSyntax:
		return "Input does not follow the grammar"
	case ErrorDuplicateDefault:
		return "Switch statement has more than one default case"
	case ErrorUnknownVersion:
		return "EVM version is not one of the supported releases"
	case ErrorVerify:
		return "Formatted output does not parse back to the same program"
	case WarningDefaultOnlySwitch:
		return "Switch statement has only a default case"
	default:
		return "Unknown error code"
	}
}

// IsWarning returns true if the error code represents a warning rather than an error
func IsWarning(code string) bool {
	return len(code) > 0 && code[0] == 'W'
}
