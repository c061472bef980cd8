package main

import (
	"io"
	"strconv"
)

// Native identifies a built-in operation. Natives are bound by name when an
// Env is created; two native values are equal when they name the same
// operation.
type Native uint8

// Built-in operations, in binding order.
const (
	nativeAdd Native = iota + 1
	nativeSub
	nativeMul
	nativeDiv
	nativeLess
	nativeIf
	nativeDef
	nativePuts
	nativePop
	nativeDup
	nativeExch
	nativeIndex

	nativeCount
)

var nativeNames = [nativeCount]string{
	nativeAdd:   "+",
	nativeSub:   "-",
	nativeMul:   "*",
	nativeDiv:   "/",
	nativeLess:  "<",
	nativeIf:    "if",
	nativeDef:   "def",
	nativePuts:  "puts",
	nativePop:   "pop",
	nativeDup:   "dup",
	nativeExch:  "exch",
	nativeIndex: "index",
}

func (op Native) String() string {
	if op > 0 && op < nativeCount {
		return nativeNames[op]
	}
	return "native#" + strconv.Itoa(int(op))
}

func (op Native) call(env *Env) error {
	switch op {
	case nativeAdd:
		return env.binop(func(a, b int32) (int32, error) { return a + b, nil })
	case nativeSub:
		return env.binop(func(a, b int32) (int32, error) { return a - b, nil })
	case nativeMul:
		return env.binop(func(a, b int32) (int32, error) { return a * b, nil })
	case nativeDiv:
		return env.binop(func(a, b int32) (int32, error) {
			if b == 0 {
				return 0, ErrDivisionByZero
			}
			return a / b, nil
		})
	case nativeLess:
		return env.binop(func(a, b int32) (int32, error) { return boolInt(a < b), nil })
	case nativeIf:
		return env.ifElse()
	case nativeDef:
		return env.def()
	case nativePuts:
		return env.puts()
	case nativePop:
		return env.popOp()
	case nativeDup:
		return env.dup()
	case nativeExch:
		return env.exch()
	case nativeIndex:
		return env.index()
	}
	return &UndefinedError{op.String()}
}

func (env *Env) bindNatives() {
	for op := Native(1); op < nativeCount; op++ {
		env.bindings[op.String()] = NativeValue(op)
	}
}

//// Arithmetic and comparison

// binop pops a right then a left number and pushes f(left, right). Operands
// are checked before anything is popped, so a failure leaves the stack as it
// was.
func (env *Env) binop(f func(a, b int32) (int32, error)) error {
	if err := env.need(2); err != nil {
		return err
	}
	b, err := env.peek(0).AsNumber()
	if err != nil {
		return err
	}
	a, err := env.peek(1).AsNumber()
	if err != nil {
		return err
	}
	c, err := f(a, b)
	if err != nil {
		return err
	}
	env.drop(2)
	env.push(Number(c))
	return nil
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

//// Control flow and binding

// ifElse runs { cond } { then } { else } if: the condition block is
// evaluated, a number verdict popped, and the chosen branch evaluated in
// place.
func (env *Env) ifElse() error {
	if err := env.need(3); err != nil {
		return err
	}
	elseBlock, err := env.peek(0).AsBlock()
	if err != nil {
		return err
	}
	thenBlock, err := env.peek(1).AsBlock()
	if err != nil {
		return err
	}
	condBlock, err := env.peek(2).AsBlock()
	if err != nil {
		return err
	}
	env.drop(3)

	if err := env.evalBlock(condBlock); err != nil {
		return err
	}
	if err := env.need(1); err != nil {
		return err
	}
	verdict, err := env.peek(0).AsNumber()
	if err != nil {
		return err
	}
	env.drop(1)

	env.logf("?", "if %v", verdict)
	if verdict != 0 {
		return env.evalBlock(thenBlock)
	}
	return env.evalBlock(elseBlock)
}

// def runs /name value def: the value is evaluated once more, so that it is
// resolved if it names something, and the result is bound under name.
func (env *Env) def() error {
	if err := env.need(2); err != nil {
		return err
	}
	if _, err := env.peek(1).AsSymbol(); err != nil {
		return err
	}

	if err := env.Eval(env.pop()); err != nil {
		return err
	}

	if err := env.need(2); err != nil {
		return err
	}
	name, err := env.peek(1).AsSymbol()
	if err != nil {
		return err
	}
	val := env.peek(0)
	env.drop(2)

	env.logf("=", "def %v %v", name, val)
	env.bindings[name] = val
	return nil
}

//// Output

func (env *Env) puts() error {
	if err := env.need(1); err != nil {
		return err
	}
	val := env.pop()
	if _, err := io.WriteString(env.out, val.Display()+"\n"); err != nil {
		return err
	}
	return nil
}

//// Stack manipulation

func (env *Env) popOp() error {
	if err := env.need(1); err != nil {
		return err
	}
	env.drop(1)
	return nil
}

func (env *Env) dup() error {
	if err := env.need(1); err != nil {
		return err
	}
	env.push(env.peek(0))
	return nil
}

func (env *Env) exch() error {
	if err := env.need(2); err != nil {
		return err
	}
	i := len(env.stack) - 1
	env.stack[i], env.stack[i-1] = env.stack[i-1], env.stack[i]
	return nil
}

// index pops n and pushes a copy of the value n places below the new top of
// stack; 0 copies the top.
func (env *Env) index() error {
	if err := env.need(1); err != nil {
		return err
	}
	n, err := env.peek(0).AsNumber()
	if err != nil {
		return err
	}
	depth := len(env.stack) - 1
	if n < 0 || int(n) >= depth {
		return &IndexError{Index: n, Depth: depth}
	}
	env.drop(1)
	env.push(env.peek(int(n)))
	return nil
}
