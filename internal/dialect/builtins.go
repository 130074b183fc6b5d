package dialect

import (
	"fmt"
	"strings"
)

// Effect describes what a builtin may observe or change.
type Effect uint8

const (
	ReadsMemory Effect = 1 << iota
	WritesMemory
	ReadsStorage
	WritesStorage
	ReadsEnvironment
	Terminates

	// Pure builtins have no effects at all.
	Pure Effect = 0
)

var effectNames = []struct {
	effect Effect
	name   string
}{
	{ReadsMemory, "reads memory"},
	{WritesMemory, "writes memory"},
	{ReadsStorage, "reads storage"},
	{WritesStorage, "writes storage"},
	{ReadsEnvironment, "reads environment"},
	{Terminates, "terminates"},
}

func (e Effect) String() string {
	if e == Pure {
		return "pure"
	}
	var parts []string
	for _, en := range effectNames {
		if e&en.effect != 0 {
			parts = append(parts, en.name)
		}
	}
	return strings.Join(parts, ", ")
}

// Builtin is one opcode callable as a function.
type Builtin struct {
	Name    string
	Params  int
	Returns int
	Effects Effect
	Since   Version
}

// ReturnsValue reports whether the builtin can be used as an expression.
func (b Builtin) ReturnsValue() bool {
	return b.Returns > 0
}

// Signature renders the builtin the way it would be declared as a Yul function.
func (b Builtin) Signature() string {
	params := make([]string, b.Params)
	for i := range params {
		params[i] = fmt.Sprintf("p%d", i)
	}
	sig := fmt.Sprintf("%s(%s)", b.Name, strings.Join(params, ", "))
	if b.Returns > 0 {
		sig += " -> r"
	}
	return sig
}

const (
	env = ReadsEnvironment
	mem = ReadsMemory | WritesMemory
)

var opcodes = []Builtin{
	{Name: "stop", Effects: Terminates, Since: Homestead},
	{Name: "add", Params: 2, Returns: 1, Since: Homestead},
	{Name: "mul", Params: 2, Returns: 1, Since: Homestead},
	{Name: "sub", Params: 2, Returns: 1, Since: Homestead},
	{Name: "div", Params: 2, Returns: 1, Since: Homestead},
	{Name: "sdiv", Params: 2, Returns: 1, Since: Homestead},
	{Name: "mod", Params: 2, Returns: 1, Since: Homestead},
	{Name: "smod", Params: 2, Returns: 1, Since: Homestead},
	{Name: "addmod", Params: 3, Returns: 1, Since: Homestead},
	{Name: "mulmod", Params: 3, Returns: 1, Since: Homestead},
	{Name: "exp", Params: 2, Returns: 1, Since: Homestead},
	{Name: "signextend", Params: 2, Returns: 1, Since: Homestead},
	{Name: "lt", Params: 2, Returns: 1, Since: Homestead},
	{Name: "gt", Params: 2, Returns: 1, Since: Homestead},
	{Name: "slt", Params: 2, Returns: 1, Since: Homestead},
	{Name: "sgt", Params: 2, Returns: 1, Since: Homestead},
	{Name: "eq", Params: 2, Returns: 1, Since: Homestead},
	{Name: "iszero", Params: 1, Returns: 1, Since: Homestead},
	{Name: "and", Params: 2, Returns: 1, Since: Homestead},
	{Name: "or", Params: 2, Returns: 1, Since: Homestead},
	{Name: "xor", Params: 2, Returns: 1, Since: Homestead},
	{Name: "not", Params: 1, Returns: 1, Since: Homestead},
	{Name: "byte", Params: 2, Returns: 1, Since: Homestead},
	{Name: "shl", Params: 2, Returns: 1, Since: Constantinople},
	{Name: "shr", Params: 2, Returns: 1, Since: Constantinople},
	{Name: "sar", Params: 2, Returns: 1, Since: Constantinople},
	{Name: "keccak256", Params: 2, Returns: 1, Effects: ReadsMemory, Since: Homestead},

	{Name: "address", Returns: 1, Effects: env, Since: Homestead},
	{Name: "balance", Params: 1, Returns: 1, Effects: env, Since: Homestead},
	{Name: "origin", Returns: 1, Effects: env, Since: Homestead},
	{Name: "caller", Returns: 1, Effects: env, Since: Homestead},
	{Name: "callvalue", Returns: 1, Effects: env, Since: Homestead},
	{Name: "calldataload", Params: 1, Returns: 1, Effects: env, Since: Homestead},
	{Name: "calldatasize", Returns: 1, Effects: env, Since: Homestead},
	{Name: "calldatacopy", Params: 3, Effects: env | WritesMemory, Since: Homestead},
	{Name: "codesize", Returns: 1, Effects: env, Since: Homestead},
	{Name: "codecopy", Params: 3, Effects: env | WritesMemory, Since: Homestead},
	{Name: "gasprice", Returns: 1, Effects: env, Since: Homestead},
	{Name: "extcodesize", Params: 1, Returns: 1, Effects: env, Since: Homestead},
	{Name: "extcodecopy", Params: 4, Effects: env | WritesMemory, Since: Homestead},
	{Name: "returndatasize", Returns: 1, Effects: env, Since: Byzantium},
	{Name: "returndatacopy", Params: 3, Effects: env | WritesMemory, Since: Byzantium},
	{Name: "extcodehash", Params: 1, Returns: 1, Effects: env, Since: Constantinople},

	{Name: "blockhash", Params: 1, Returns: 1, Effects: env, Since: Homestead},
	{Name: "coinbase", Returns: 1, Effects: env, Since: Homestead},
	{Name: "timestamp", Returns: 1, Effects: env, Since: Homestead},
	{Name: "number", Returns: 1, Effects: env, Since: Homestead},
	{Name: "difficulty", Returns: 1, Effects: env, Since: Homestead},
	{Name: "gaslimit", Returns: 1, Effects: env, Since: Homestead},

	{Name: "pop", Params: 1, Since: Homestead},
	{Name: "mload", Params: 1, Returns: 1, Effects: ReadsMemory, Since: Homestead},
	{Name: "mstore", Params: 2, Effects: WritesMemory, Since: Homestead},
	{Name: "mstore8", Params: 2, Effects: WritesMemory, Since: Homestead},
	{Name: "sload", Params: 1, Returns: 1, Effects: ReadsStorage, Since: Homestead},
	{Name: "sstore", Params: 2, Effects: WritesStorage, Since: Homestead},
	{Name: "msize", Returns: 1, Effects: ReadsMemory, Since: Homestead},
	{Name: "gas", Returns: 1, Effects: env, Since: Homestead},
	{Name: "pc", Returns: 1, Since: Homestead},

	{Name: "log0", Params: 2, Effects: ReadsMemory | WritesStorage, Since: Homestead},
	{Name: "log1", Params: 3, Effects: ReadsMemory | WritesStorage, Since: Homestead},
	{Name: "log2", Params: 4, Effects: ReadsMemory | WritesStorage, Since: Homestead},
	{Name: "log3", Params: 5, Effects: ReadsMemory | WritesStorage, Since: Homestead},
	{Name: "log4", Params: 6, Effects: ReadsMemory | WritesStorage, Since: Homestead},

	{Name: "create", Params: 3, Returns: 1, Effects: mem | ReadsStorage | WritesStorage | env, Since: Homestead},
	{Name: "create2", Params: 4, Returns: 1, Effects: mem | ReadsStorage | WritesStorage | env, Since: Constantinople},
	{Name: "call", Params: 7, Returns: 1, Effects: mem | ReadsStorage | WritesStorage | env, Since: Homestead},
	{Name: "callcode", Params: 7, Returns: 1, Effects: mem | ReadsStorage | WritesStorage | env, Since: Homestead},
	{Name: "delegatecall", Params: 6, Returns: 1, Effects: mem | ReadsStorage | WritesStorage | env, Since: Homestead},
	{Name: "staticcall", Params: 6, Returns: 1, Effects: mem | env, Since: Byzantium},
	{Name: "return", Params: 2, Effects: ReadsMemory | Terminates, Since: Homestead},
	{Name: "revert", Params: 2, Effects: ReadsMemory | Terminates, Since: Byzantium},
	{Name: "invalid", Effects: Terminates, Since: Homestead},
	{Name: "selfdestruct", Params: 1, Effects: WritesStorage | Terminates, Since: Homestead},
}
