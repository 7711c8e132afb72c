package llvm

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/HicaroD/minicc/internal/ast"
	"github.com/HicaroD/minicc/internal/config"
	"github.com/HicaroD/minicc/internal/diagnostics"
	"github.com/HicaroD/minicc/internal/lexer/token"
	"github.com/HicaroD/minicc/internal/symbols"
	"tinygo.org/x/go-llvm"
)

type llvmCodegen struct {
	context llvm.Context
	module  llvm.Module
	builder llvm.Builder

	name    string
	program *ast.Program
	initial *symbols.Store

	globals  map[string]*Variable
	printf   *Function
	main     llvm.Value
	divZero  llvm.BasicBlock
	hasDivBB bool

	// Tools used by Build; taken from config.ENVS when it is loaded.
	Opt   string
	Clang string
}

// NewCG prepares a module named after name for program. Variables found in
// initial start with their stored values, every other variable starts at zero.
func NewCG(name string, program *ast.Program, initial *symbols.Store) *llvmCodegen {
	context := llvm.NewContext()
	module := context.NewModule(name)
	builder := context.NewBuilder()

	defaultTargetTriple := llvm.DefaultTargetTriple()
	module.SetTarget(defaultTargetTriple)

	if initial == nil {
		initial = symbols.NewStore()
	}

	c := &llvmCodegen{
		context: context,
		module:  module,
		builder: builder,
		name:    name,
		program: program,
		initial: initial,
		globals: map[string]*Variable{},
		Opt:     "opt",
		Clang:   "clang",
	}
	if config.ENVS != nil {
		c.Opt = config.ENVS.OPT
		c.Clang = config.ENVS.CLANG
	}
	return c
}

// Generate lowers the program into the module and verifies it.
func (c *llvmCodegen) Generate() error {
	c.generateGlobals()
	c.generatePrintf()

	err := c.generateMain()
	if err != nil {
		return err
	}
	return llvm.VerifyModule(c.module, llvm.ReturnStatusAction)
}

// IR returns the textual module. Generate must have been called.
func (c *llvmCodegen) IR() string {
	return c.module.String()
}

func (c *llvmCodegen) Dispose() {
	c.builder.Dispose()
	c.context.Dispose()
}

func (c *llvmCodegen) generateGlobals() {
	for _, entry := range c.initial.Entries() {
		c.addGlobal(entry.Name, entry.Value)
	}
	for _, stmt := range c.program.Statements {
		if _, ok := c.globals[stmt.Name]; !ok {
			c.addGlobal(stmt.Name, 0)
		}
	}
}

// globalName keeps variables apart from functions such as main and printf.
// Identifiers never contain '.', so the prefix cannot be produced by a source
// name.
func globalName(name string) string {
	return "var." + name
}

func (c *llvmCodegen) addGlobal(name string, value int64) {
	ty := c.context.Int64Type()
	global := llvm.AddGlobal(c.module, ty, globalName(name))
	global.SetInitializer(llvm.ConstInt(ty, uint64(value), true))
	global.SetLinkage(llvm.PrivateLinkage)

	c.globals[name] = NewVariableValue(name, ty, global)
}

func (c *llvmCodegen) generatePrintf() {
	ptrTy := llvm.PointerType(c.context.Int8Type(), 0)
	ty := llvm.FunctionType(c.context.Int32Type(), []llvm.Type{ptrTy}, true)
	fn := llvm.AddFunction(c.module, "printf", ty)
	fn.SetLinkage(llvm.ExternalLinkage)
	c.printf = &Function{Fn: fn, Ty: ty}
}

func (c *llvmCodegen) generateMain() error {
	ty := llvm.FunctionType(c.context.Int32Type(), nil, false)
	c.main = llvm.AddFunction(c.module, "main", ty)
	entry := c.context.AddBasicBlock(c.main, "entry")
	c.builder.SetInsertPointAtEnd(entry)

	format := c.builder.CreateGlobalStringPtr("%s = %lld\n", ".fmt")

	for _, stmt := range c.program.Statements {
		value, err := c.getExpr(stmt.Value)
		if err != nil {
			return err
		}
		variable := c.globals[stmt.Name]
		c.builder.CreateStore(value, variable.Ptr)

		name := c.builder.CreateGlobalStringPtr(stmt.Name, ".name")
		c.builder.CreateCall(c.printf.Ty, c.printf.Fn, []llvm.Value{format, name, value}, "")
	}

	c.builder.CreateRet(llvm.ConstInt(c.context.Int32Type(), 0, false))
	return nil
}

func (c *llvmCodegen) getExpr(expr ast.Expr) (llvm.Value, error) {
	switch n := expr.(type) {
	case *ast.NumberLiteral:
		return llvm.ConstInt(c.context.Int64Type(), uint64(n.Value), true), nil
	case *ast.VarRef:
		variable, ok := c.globals[n.Name]
		if !ok {
			return llvm.Value{}, &diagnostics.UnboundVariableError{Name: n.Name, Pos: n.Pos}
		}
		return c.builder.CreateLoad(variable.Ty, variable.Ptr, ".load"), nil
	case *ast.BinaryExpr:
		lhs, err := c.getExpr(n.Left)
		if err != nil {
			return llvm.Value{}, err
		}
		rhs, err := c.getExpr(n.Right)
		if err != nil {
			return llvm.Value{}, err
		}

		switch n.Op {
		case token.PLUS:
			return c.builder.CreateAdd(lhs, rhs, ".add"), nil
		case token.MINUS:
			return c.builder.CreateSub(lhs, rhs, ".sub"), nil
		case token.STAR:
			return c.builder.CreateMul(lhs, rhs, ".mul"), nil
		case token.SLASH:
			c.generateZeroCheck(rhs)
			return c.builder.CreateSDiv(lhs, c.generateDivisor(lhs, rhs), ".div"), nil
		default:
			return llvm.Value{}, fmt.Errorf("unimplemented binary operator: %s", n.Op)
		}
	default:
		return llvm.Value{}, fmt.Errorf("unimplemented expr: %s", reflect.TypeOf(expr))
	}
}

// generateZeroCheck branches to the shared division-by-zero block when
// divisor is zero and leaves the builder in the non-zero path.
func (c *llvmCodegen) generateZeroCheck(divisor llvm.Value) {
	zero := llvm.ConstInt(c.context.Int64Type(), 0, false)
	isZero := c.builder.CreateICmp(llvm.IntEQ, divisor, zero, ".iszero")

	okBlock := c.context.AddBasicBlock(c.main, ".divok")
	c.builder.CreateCondBr(isZero, c.getDivZeroBlock(), okBlock)
	c.builder.SetInsertPointAtEnd(okBlock)
}

// generateDivisor replaces the divisor of MinInt64 / -1 by 1 so the quotient
// wraps to MinInt64 as in the interpreter, instead of being undefined.
func (c *llvmCodegen) generateDivisor(dividend, divisor llvm.Value) llvm.Value {
	ty := c.context.Int64Type()
	minInt := llvm.ConstInt(ty, uint64(1)<<63, true)
	minusOne := llvm.ConstInt(ty, ^uint64(0), true)

	isMin := c.builder.CreateICmp(llvm.IntEQ, dividend, minInt, ".ismin")
	isMinusOne := c.builder.CreateICmp(llvm.IntEQ, divisor, minusOne, ".isminusone")
	overflows := c.builder.CreateAnd(isMin, isMinusOne, ".overflows")
	return c.builder.CreateSelect(overflows, llvm.ConstInt(ty, 1, true), divisor, ".divisor")
}

func (c *llvmCodegen) getDivZeroBlock() llvm.BasicBlock {
	if c.hasDivBB {
		return c.divZero
	}
	current := c.builder.GetInsertBlock()

	c.divZero = c.context.AddBasicBlock(c.main, ".divzero")
	c.hasDivBB = true
	c.builder.SetInsertPointAtEnd(c.divZero)
	msg := c.builder.CreateGlobalStringPtr("error: division by zero\n", ".divmsg")
	c.builder.CreateCall(c.printf.Ty, c.printf.Fn, []llvm.Value{msg}, "")
	c.builder.CreateRet(llvm.ConstInt(c.context.Int32Type(), 1, false))

	c.builder.SetInsertPointAtEnd(current)
	return c.divZero
}

// WriteIR writes the module to path.
func (c *llvmCodegen) WriteIR(path string) error {
	return os.WriteFile(path, []byte(c.IR()), 0644)
}

// Build writes the module to a temporary directory, optimizes it with opt and
// links it with clang into output.
func (c *llvmCodegen) Build(buildType config.BuildType, output string) error {
	if output == "" {
		output = strings.TrimSuffix(filepath.Base(c.name), filepath.Ext(c.name))
	}

	dir, err := os.MkdirTemp("", "build")
	if err != nil {
		return err
	}

	irFileName := filepath.Join(dir, filepath.Base(c.name))
	irFilepath := irFileName + ".ll"
	optimizedIrFilepath := irFileName + "_optimized.ll"

	err = c.WriteIR(irFilepath)
	if err != nil {
		return err
	}

	optLevel := buildType.OptLevel()
	compilerFlags := []string{optLevel, "-o", output, optimizedIrFilepath}
	if buildType == config.RELEASE {
		compilerFlags = append([]string{"-Wl,-s"}, compilerFlags...)
	}

	cmd := exec.Command(c.Opt, optLevel, "-S", "-o", optimizedIrFilepath, irFilepath)
	if out, err := cmd.CombinedOutput(); err != nil {
		if config.DEBUG_MODE {
			fmt.Printf("[DEBUG MODE] OPT COMMAND: %s\n", cmd)
		}
		return fmt.Errorf("%s: %w\n%s", c.Opt, err, out)
	}

	cmd = exec.Command(c.Clang, compilerFlags...)
	if out, err := cmd.CombinedOutput(); err != nil {
		if config.DEBUG_MODE {
			fmt.Printf("[DEBUG MODE] CLANG COMMAND: %s\n", cmd)
		}
		return fmt.Errorf("%s: %w\n%s", c.Clang, err, out)
	}

	if config.DEBUG_MODE {
		fmt.Printf("[DEBUG MODE] keeping build directory %s\n", dir)
		return nil
	}
	return os.RemoveAll(dir)
}
