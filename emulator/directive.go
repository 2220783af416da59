package emulator

import "fmt"

// DirectiveKind is the kind of control flow change an instruction requests from the VM
type DirectiveKind uint8

const (
	// DirectiveContinue moves on to the next instruction
	DirectiveContinue DirectiveKind = iota
	// DirectiveJump sets the program counter to Target
	DirectiveJump
	// DirectiveCall asks the VM to resolve and invoke the helper function CallID
	DirectiveCall
	// DirectiveHalt stops the program normally with Code as exit code
	DirectiveHalt
	// DirectiveTrap stops the program abnormally
	DirectiveTrap
)

// A Directive is returned by every executed instruction, it tells the VM what to do next. Instructions never modify
// the program counter themselves.
type Directive struct {
	Kind   DirectiveKind
	Target int
	CallID int32
	Code   int64
	Trap   *Trap
}

func Continue() Directive {
	return Directive{Kind: DirectiveContinue}
}

func JumpTo(pc int) Directive {
	return Directive{Kind: DirectiveJump, Target: pc}
}

func Call(id int32) Directive {
	return Directive{Kind: DirectiveCall, CallID: id}
}

func Halt(code int64) Directive {
	return Directive{Kind: DirectiveHalt, Code: code}
}

func Fault(t *Trap) Directive {
	return Directive{Kind: DirectiveTrap, Trap: t}
}

func (d Directive) String() string {
	switch d.Kind {
	case DirectiveContinue:
		return "continue"
	case DirectiveJump:
		return fmt.Sprintf("jump %d", d.Target)
	case DirectiveCall:
		return fmt.Sprintf("call %d", d.CallID)
	case DirectiveHalt:
		return fmt.Sprintf("halt %d", d.Code)
	case DirectiveTrap:
		return fmt.Sprintf("trap %s", d.Trap)
	}

	return "unknown"
}
