package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/printer"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ContribPackages tracks which contrib subpackages are needed for imports.
type ContribPackages struct {
	Math      bool // contrib/math (Exp, Log, Sin, etc.)
	Dot       bool // contrib/dot (Dot product)
	MatVec    bool // contrib/matvec (Matrix-vector ops)
	Algo      bool // contrib/algo (Transform utilities)
	HwyPkg    bool // hwy package functions (Pow2, etc.) used in SIMD targets
	StdMath   bool // stdlib math package (math.Inf, math.NaN, etc.)
	HwyCore   bool // hwy core ops (Load, Store, Add, etc.) that need vec package
}

// detectContribPackages analyzes parsed functions to determine which contrib subpackages are used.
// Returns the combined packages across all targets (for backward compatibility).
func detectContribPackages(funcs []ParsedFunc, targets []Target) ContribPackages {
	pkgs := ContribPackages{}

	for _, pf := range funcs {
		for _, call := range pf.HwyCalls {
			// Check each target's OpMap for this function
			for _, target := range targets {
				if opInfo, ok := target.OpMap[call.FuncName]; ok {
					switch opInfo.SubPackage {
					case "math":
						pkgs.Math = true
					case "dot":
						pkgs.Dot = true
					case "matvec":
						pkgs.MatVec = true
					case "algo":
						pkgs.Algo = true
					}
					// HwyPkg is set per-target in detectContribPackagesForTarget
				}
			}
		}
	}

	return pkgs
}

// detectContribPackagesForTarget analyzes parsed functions to determine packages used for a specific target.
func detectContribPackagesForTarget(funcs []ParsedFunc, target Target) ContribPackages {
	pkgs := ContribPackages{}

	// Known stdlib math functions that might be called
	stdMathFuncs := map[string]bool{
		"Inf": true, "NaN": true, "IsInf": true, "IsNaN": true,
		"Floor": true, "Ceil": true, "Round": true, "Trunc": true,
		"Sqrt": true, "Cbrt": true, "Abs": true,
		"Sin": true, "Cos": true, "Tan": true,
		"Asin": true, "Acos": true, "Atan": true, "Atan2": true,
		"Sinh": true, "Cosh": true, "Tanh": true,
		"Asinh": true, "Acosh": true, "Atanh": true,
		"Exp": true, "Exp2": true, "Expm1": true,
		"Log": true, "Log2": true, "Log10": true, "Log1p": true,
		"Pow": true, "Hypot": true, "Erf": true, "Erfc": true,
		"Copysign": true, "Signbit": true, "Max": true, "Min": true,
	}

	for _, pf := range funcs {
		for _, call := range pf.HwyCalls {
			// Check for stdmath FIRST - it's always stdlib, never in OpMap
			if call.Package == "stdmath" {
				pkgs.StdMath = true
				continue
			}
			if opInfo, ok := target.OpMap[call.FuncName]; ok {
				switch opInfo.SubPackage {
				case "math":
					pkgs.Math = true
				case "dot":
					pkgs.Dot = true
				case "matvec":
					pkgs.MatVec = true
				case "algo":
					pkgs.Algo = true
				}
				// Check if this is a hwy package function (like RoundToEven for AVX512) for this target
				if opInfo.Package == "hwy" && !opInfo.IsMethod && target.Name != "Fallback" {
					pkgs.HwyPkg = true
				}
				// Track if core hwy operations are used (Load, Store, Add, etc.)
				if call.Package == "hwy" {
					pkgs.HwyCore = true
				}
			} else if call.Package == "math" {
				if stdMathFuncs[call.FuncName] {
					// This is a stdlib math function call (not in OpMap)
					pkgs.StdMath = true
				} else if strings.HasPrefix(call.FuncName, "Base") {
					// This is a contrib math function reference (like math.BaseExpVec)
					pkgs.Math = true
				}
			} else if call.Package == "algo" && strings.HasPrefix(call.FuncName, "Base") {
				// This is a contrib algo function reference (like algo.BaseApply)
				pkgs.Algo = true
			} else if call.Package == "hwy" {
				// Other hwy package references
				pkgs.HwyCore = true
			}
		}
	}

	return pkgs
}

// EmitDispatcher generates the runtime dispatch file(s).
// This generates architecture-specific dispatch files:
// - dispatch_amd64.gen.go for AVX2/AVX512
// - dispatch_arm64.gen.go for NEON
// - dispatch.gen.go for fallback-only (no build tags)
func EmitDispatcher(funcs []ParsedFunc, targets []Target, pkgName, outPath string) error {
	// Group targets by architecture
	amd64Targets := []Target{}
	arm64Targets := []Target{}
	hasFallback := false

	for _, target := range targets {
		switch target.Arch() {
		case "amd64":
			amd64Targets = append(amd64Targets, target)
		case "arm64":
			arm64Targets = append(arm64Targets, target)
		default:
			if target.Name == "Fallback" {
				hasFallback = true
			}
		}
	}

	// Generate amd64 dispatch if we have amd64 targets
	if len(amd64Targets) > 0 {
		if err := emitArchDispatcher(funcs, amd64Targets, hasFallback, pkgName, outPath, "amd64"); err != nil {
			return err
		}
	}

	// Generate arm64 dispatch if we have arm64 targets
	if len(arm64Targets) > 0 {
		if err := emitArchDispatcher(funcs, arm64Targets, hasFallback, pkgName, outPath, "arm64"); err != nil {
			return err
		}
	}

	// Generate fallback-only dispatch if only fallback is requested
	if len(amd64Targets) == 0 && len(arm64Targets) == 0 && hasFallback {
		if err := emitFallbackOnlyDispatcher(funcs, pkgName, outPath); err != nil {
			return err
		}
	}

	return nil
}

// hasVecInSignature checks if a function has hwy.Vec anywhere in its parameters or returns.
// This includes:
// - Direct Vec params: v hwy.Vec[T]
// - Function params containing Vec: fn func(hwy.Vec[T]) hwy.Vec[T]
// - Return types containing Vec
//
// Functions with Vec in their signature cannot have dispatch generated because:
// - The concrete Vec type differs per architecture (archsimd.Float32x8 vs asm.Float32x4)
// - Function type parameters containing Vec are especially problematic since you can't
//   assign func(archsimd.Float32x8) to func(hwy.Vec[float32])
func hasVecInSignature(pf ParsedFunc) bool {
	for _, param := range pf.Params {
		if strings.Contains(param.Type, "hwy.Vec[") || strings.Contains(param.Type, "Vec[") {
			return true
		}
	}
	for _, ret := range pf.Returns {
		if strings.Contains(ret.Type, "hwy.Vec[") || strings.Contains(ret.Type, "Vec[") {
			return true
		}
	}
	return false
}

// filterDispatchableFuncs returns only functions that should have dispatch generated.
// Functions with Vec anywhere in their signature are excluded because:
// - Vec→Vec functions have dispatch at the Transform layer
// - Function type parameters with Vec can't be unified across architectures
func filterDispatchableFuncs(funcs []ParsedFunc) []ParsedFunc {
	var result []ParsedFunc
	for _, pf := range funcs {
		if !hasVecInSignature(pf) {
			result = append(result, pf)
		}
	}
	return result
}

// emitArchDispatcher generates an architecture-specific dispatch file.
func emitArchDispatcher(funcs []ParsedFunc, archTargets []Target, hasFallback bool, pkgName, outPath, arch string) error {
	// Filter out Vec→Vec functions - they don't need dispatch
	dispatchableFuncs := filterDispatchableFuncs(funcs)
	if len(dispatchableFuncs) == 0 {
		// No dispatchable functions, skip dispatch file generation
		return nil
	}

	var buf bytes.Buffer

	// Determine build tag based on architecture
	// amd64 requires goexperiment.simd for archsimd
	// arm64 uses our asm package which doesn't require the SIMD experiment
	var buildTag string
	if arch == "amd64" {
		buildTag = arch + " && goexperiment.simd"
	} else {
		buildTag = arch
	}

	// File header with build tag
	fmt.Fprintf(&buf, "// Code generated by hwygen. DO NOT EDIT.\n")
	fmt.Fprintf(&buf, "//go:build %s\n", buildTag)
	fmt.Fprintf(&buf, "\npackage %s\n\n", pkgName)

	// Check if any function has type params (needs hwy import for generic dispatcher)
	hasGenerics := false
	for _, pf := range dispatchableFuncs {
		if len(pf.TypeParams) > 0 {
			hasGenerics = true
			break
		}
	}

	// Imports - amd64 needs archsimd, arm64 doesn't
	// hwy needed for generic dispatcher type constraint
	fmt.Fprintf(&buf, "import (\n")
	fmt.Fprintf(&buf, "\t\"os\"\n")
	if hasGenerics {
		fmt.Fprintf(&buf, "\n\t\"github.com/ajroetker/go-highway/hwy\"\n")
	}
	if arch == "amd64" {
		fmt.Fprintf(&buf, "\t\"simd/archsimd\"\n")
	}
	fmt.Fprintf(&buf, ")\n\n")

	// Declare function variables
	for _, pf := range dispatchableFuncs {
		var concreteTypes []string
		if len(pf.TypeParams) > 0 {
			concreteTypes = GetConcreteTypes(pf.TypeParams[0].Constraint)
		} else {
			concreteTypes = []string{"float32"}
		}

		for _, elemType := range concreteTypes {
			funcName := buildDispatchFuncName(pf.Name, elemType)
			signature := buildFuncSignature(pf, elemType)
			fmt.Fprintf(&buf, "var %s func%s\n", funcName, signature)
		}
	}
	fmt.Fprintf(&buf, "\n")

	// Generate generic dispatcher functions for generic source functions
	for _, pf := range dispatchableFuncs {
		if len(pf.TypeParams) > 0 {
			emitGenericDispatcher(&buf, pf)
		}
	}

	// Generate init() function
	fmt.Fprintf(&buf, "func init() {\n")
	fmt.Fprintf(&buf, "\tif os.Getenv(\"HWY_NO_SIMD\") != \"\" {\n")
	fmt.Fprintf(&buf, "\t\tinitFallback()\n")
	fmt.Fprintf(&buf, "\t\treturn\n")
	fmt.Fprintf(&buf, "\t}\n")

	// Add CPU detection for each target
	for _, target := range archTargets {
		switch target.Name {
		case "AVX512":
			fmt.Fprintf(&buf, "\tif archsimd.X86.AVX512() {\n")
			fmt.Fprintf(&buf, "\t\tinitAVX512()\n")
			fmt.Fprintf(&buf, "\t\treturn\n")
			fmt.Fprintf(&buf, "\t}\n")
		case "AVX2":
			fmt.Fprintf(&buf, "\tif archsimd.X86.AVX2() {\n")
			fmt.Fprintf(&buf, "\t\tinitAVX2()\n")
			fmt.Fprintf(&buf, "\t\treturn\n")
			fmt.Fprintf(&buf, "\t}\n")
		case "NEON":
			// NEON is always available on arm64, so just init directly
			fmt.Fprintf(&buf, "\tinitNEON()\n")
			fmt.Fprintf(&buf, "\treturn\n")
		}
	}

	// Fallback to scalar (only if not NEON which always succeeds)
	if arch != "arm64" {
		fmt.Fprintf(&buf, "\tinitFallback()\n")
	}
	fmt.Fprintf(&buf, "}\n\n")

	// Generate init functions for each target
	for _, target := range archTargets {
		initFuncName := "init" + target.Name
		fmt.Fprintf(&buf, "func %s() {\n", initFuncName)

		for _, pf := range dispatchableFuncs {
			var concreteTypes []string
			if len(pf.TypeParams) > 0 {
				concreteTypes = GetConcreteTypes(pf.TypeParams[0].Constraint)
			} else {
				concreteTypes = []string{"float32"}
			}

			for _, elemType := range concreteTypes {
				dispatchName := buildDispatchFuncName(pf.Name, elemType)
				implName := pf.Name + target.Suffix()
				if elemType != "float32" {
					implName = implName + "_" + strings.Title(elemType)
				}
				fmt.Fprintf(&buf, "\t%s = %s\n", dispatchName, implName)
			}
		}

		fmt.Fprintf(&buf, "}\n\n")
	}

	// Generate fallback init function if needed
	if hasFallback {
		fmt.Fprintf(&buf, "func initFallback() {\n")
		for _, pf := range dispatchableFuncs {
			var concreteTypes []string
			if len(pf.TypeParams) > 0 {
				concreteTypes = GetConcreteTypes(pf.TypeParams[0].Constraint)
			} else {
				concreteTypes = []string{"float32"}
			}

			for _, elemType := range concreteTypes {
				dispatchName := buildDispatchFuncName(pf.Name, elemType)
				implName := pf.Name + "_fallback"
				if elemType != "float32" {
					implName = implName + "_" + strings.Title(elemType)
				}
				fmt.Fprintf(&buf, "\t%s = %s\n", dispatchName, implName)
			}
		}
		fmt.Fprintf(&buf, "}\n")
	}

	// Format the code
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: formatting failed: %v\n", err)
		formatted = buf.Bytes()
	}

	// Write to file with architecture suffix
	filename := filepath.Join(outPath, fmt.Sprintf("dispatch_%s.gen.go", arch))
	if err := os.WriteFile(filename, formatted, 0644); err != nil {
		return fmt.Errorf("write dispatcher: %w", err)
	}

	return nil
}

// emitFallbackOnlyDispatcher generates a dispatch file with no build tags for fallback-only builds.
func emitFallbackOnlyDispatcher(funcs []ParsedFunc, pkgName, outPath string) error {
	// Filter out Vec→Vec functions - they don't need dispatch
	dispatchableFuncs := filterDispatchableFuncs(funcs)
	if len(dispatchableFuncs) == 0 {
		// No dispatchable functions, skip dispatch file generation
		return nil
	}

	var buf bytes.Buffer

	// Check if any function has type params (needs hwy import for generic dispatcher)
	hasGenerics := false
	for _, pf := range dispatchableFuncs {
		if len(pf.TypeParams) > 0 {
			hasGenerics = true
			break
		}
	}

	fmt.Fprintf(&buf, "// Code generated by hwygen. DO NOT EDIT.\n")
	fmt.Fprintf(&buf, "\npackage %s\n\n", pkgName)

	fmt.Fprintf(&buf, "import (\n")
	fmt.Fprintf(&buf, "\t\"os\"\n")
	if hasGenerics {
		fmt.Fprintf(&buf, "\n\t\"github.com/ajroetker/go-highway/hwy\"\n")
	}
	fmt.Fprintf(&buf, ")\n\n")

	// Declare function variables
	for _, pf := range dispatchableFuncs {
		var concreteTypes []string
		if len(pf.TypeParams) > 0 {
			concreteTypes = GetConcreteTypes(pf.TypeParams[0].Constraint)
		} else {
			concreteTypes = []string{"float32"}
		}

		for _, elemType := range concreteTypes {
			funcName := buildDispatchFuncName(pf.Name, elemType)
			signature := buildFuncSignature(pf, elemType)
			fmt.Fprintf(&buf, "var %s func%s\n", funcName, signature)
		}
	}
	fmt.Fprintf(&buf, "\n")

	// Generate generic dispatcher functions for generic source functions
	for _, pf := range dispatchableFuncs {
		if len(pf.TypeParams) > 0 {
			emitGenericDispatcher(&buf, pf)
		}
	}

	// Simple init that just uses fallback
	fmt.Fprintf(&buf, "func init() {\n")
	fmt.Fprintf(&buf, "\t_ = os.Getenv // silence unused import\n")
	fmt.Fprintf(&buf, "\tinitFallback()\n")
	fmt.Fprintf(&buf, "}\n\n")

	fmt.Fprintf(&buf, "func initFallback() {\n")
	for _, pf := range dispatchableFuncs {
		var concreteTypes []string
		if len(pf.TypeParams) > 0 {
			concreteTypes = GetConcreteTypes(pf.TypeParams[0].Constraint)
		} else {
			concreteTypes = []string{"float32"}
		}

		for _, elemType := range concreteTypes {
			dispatchName := buildDispatchFuncName(pf.Name, elemType)
			implName := pf.Name + "_fallback"
			if elemType != "float32" {
				implName = implName + "_" + strings.Title(elemType)
			}
			fmt.Fprintf(&buf, "\t%s = %s\n", dispatchName, implName)
		}
	}
	fmt.Fprintf(&buf, "}\n")

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: formatting failed: %v\n", err)
		formatted = buf.Bytes()
	}

	filename := filepath.Join(outPath, "dispatch.gen.go")
	if err := os.WriteFile(filename, formatted, 0644); err != nil {
		return fmt.Errorf("write dispatcher: %w", err)
	}

	return nil
}

// EmitTarget generates a target-specific implementation file.
func EmitTarget(funcs []*ast.FuncDecl, target Target, pkgName, baseName, outPath string, contribPkgs ContribPackages, hoistedConsts []HoistedConst) error {
	var buf bytes.Buffer

	// File header
	fmt.Fprintf(&buf, "// Code generated by hwygen. DO NOT EDIT.\n")
	if target.BuildTag != "" {
		fmt.Fprintf(&buf, "//go:build %s\n", target.BuildTag)
	}
	fmt.Fprintf(&buf, "\npackage %s\n\n", pkgName)

	// Build import list
	imports := []string{}

	if target.Name != "Fallback" {
		// Import the appropriate vector package only if core hwy ops are used
		if contribPkgs.HwyCore {
			switch target.VecPackage {
			case "archsimd":
				imports = append(imports, `"simd/archsimd"`)
			case "asm":
				imports = append(imports, `"github.com/ajroetker/go-highway/hwy/asm"`)
			}
		}
		// Add hwy package import if hwy functions are used (e.g., Pow2)
		if contribPkgs.HwyPkg {
			imports = append(imports, `"github.com/ajroetker/go-highway/hwy"`)
		}
		// Add contrib subpackage imports for SIMD targets
		if contribPkgs.Math {
			imports = append(imports, `"github.com/ajroetker/go-highway/hwy/contrib/math"`)
		}
		if contribPkgs.Dot {
			imports = append(imports, `"github.com/ajroetker/go-highway/hwy/contrib/dot"`)
		}
		if contribPkgs.MatVec {
			imports = append(imports, `"github.com/ajroetker/go-highway/hwy/contrib/matvec"`)
		}
		if contribPkgs.Algo {
			imports = append(imports, `"github.com/ajroetker/go-highway/hwy/contrib/algo"`)
		}
		// stdmath for scalar tail code - only if HwyCore uses math operations
		if contribPkgs.StdMath || (contribPkgs.HwyCore && contribPkgs.Math) {
			imports = append(imports, `stdmath "math"`)
		}
	} else {
		// Fallback uses the hwy package directly for core ops only if core ops are used
		if contribPkgs.HwyCore {
			imports = append(imports, `"github.com/ajroetker/go-highway/hwy"`)
		}
		// Fallback also uses contrib subpackages for their portable generic implementations
		if contribPkgs.Math {
			imports = append(imports, `"github.com/ajroetker/go-highway/hwy/contrib/math"`)
		}
		if contribPkgs.Dot {
			imports = append(imports, `"github.com/ajroetker/go-highway/hwy/contrib/dot"`)
		}
		if contribPkgs.MatVec {
			imports = append(imports, `"github.com/ajroetker/go-highway/hwy/contrib/matvec"`)
		}
		if contribPkgs.Algo {
			imports = append(imports, `"github.com/ajroetker/go-highway/hwy/contrib/algo"`)
		}
		// Include stdmath if the source file uses stdlib math functions
		if contribPkgs.StdMath {
			imports = append(imports, `stdmath "math"`)
		}
	}

	// Sort imports for consistency
	sort.Strings(imports)

	// Write imports
	fmt.Fprintf(&buf, "import (\n")
	for _, imp := range imports {
		fmt.Fprintf(&buf, "\t%s\n", imp)
	}
	fmt.Fprintf(&buf, ")\n\n")

	// Emit hoisted constants as package-level pre-broadcasted vectors
	if len(hoistedConsts) > 0 && target.Name != "Fallback" {
		emitHoistedConstants(&buf, hoistedConsts)
	}

	// Print each function
	fset := token.NewFileSet()
	for _, funcDecl := range funcs {
		if err := printer.Fprint(&buf, fset, funcDecl); err != nil {
			return fmt.Errorf("print function: %w", err)
		}
		fmt.Fprintf(&buf, "\n\n")
	}

	// Format the code
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: formatting failed for %s: %v\n", target.Name, err)
		formatted = buf.Bytes()
	}

	// Determine output filename
	filename := filepath.Join(outPath, baseName+target.Suffix()+".gen.go")

	// Write to file
	if err := os.WriteFile(filename, formatted, 0644); err != nil {
		return fmt.Errorf("write target file: %w", err)
	}

	return nil
}

// emitHoistedConstants writes package-level var declarations for hoisted vector constants.
func emitHoistedConstants(buf *bytes.Buffer, consts []HoistedConst) {
	fmt.Fprintf(buf, "// Hoisted constants - pre-broadcasted at package init time\n")
	fmt.Fprintf(buf, "var (\n")
	for _, c := range consts {
		// e.g., var BaseSigmoid_one_f32 = archsimd.BroadcastFloat32x8(1.0)
		fmt.Fprintf(buf, "\t%s = %s(%s)\n", c.VarName, c.Broadcast, c.Value)
	}
	fmt.Fprintf(buf, ")\n\n")
}

// emitGenericDispatcher generates a generic function that dispatches based on type.
// For a function like BaseMatMul[T hwy.Floats], this generates:
//
//	func MatMul[T hwy.Floats](a, b, c []T, m, n, k int) {
//	    switch any(a).(type) {
//	    case []float32:
//	        MatMulFloat32(any(a).([]float32), any(b).([]float32), any(c).([]float32), m, n, k)
//	    case []float64:
//	        MatMulFloat64(any(a).([]float64), any(b).([]float64), any(c).([]float64), m, n, k)
//	    }
//	}
func emitGenericDispatcher(buf *bytes.Buffer, pf ParsedFunc) {
	genericName := buildGenericFuncName(pf.Name)
	concreteTypes := GetConcreteTypes(pf.TypeParams[0].Constraint)

	// Function signature with type parameter
	fmt.Fprintf(buf, "// %s is the generic API that dispatches to the appropriate SIMD implementation.\n", genericName)
	fmt.Fprintf(buf, "func %s[T %s](", genericName, pf.TypeParams[0].Constraint)

	// Parameters
	for i, param := range pf.Params {
		if i > 0 {
			fmt.Fprintf(buf, ", ")
		}
		fmt.Fprintf(buf, "%s %s", param.Name, param.Type)
	}
	fmt.Fprintf(buf, ")")

	// Return type if any
	if len(pf.Returns) > 0 {
		if len(pf.Returns) == 1 && pf.Returns[0].Name == "" {
			fmt.Fprintf(buf, " %s", pf.Returns[0].Type)
		} else {
			fmt.Fprintf(buf, " (")
			for i, ret := range pf.Returns {
				if i > 0 {
					fmt.Fprintf(buf, ", ")
				}
				if ret.Name != "" {
					fmt.Fprintf(buf, "%s ", ret.Name)
				}
				fmt.Fprintf(buf, "%s", ret.Type)
			}
			fmt.Fprintf(buf, ")")
		}
	}

	fmt.Fprintf(buf, " {\n")

	// Find the first slice parameter to use for type switch
	var switchParam string
	for _, param := range pf.Params {
		if strings.HasPrefix(param.Type, "[]T") || param.Type == "[]T" {
			switchParam = param.Name
			break
		}
	}

	if switchParam == "" {
		// No slice parameter found, use first parameter
		switchParam = pf.Params[0].Name
	}

	// Generate type switch
	fmt.Fprintf(buf, "\tswitch any(%s).(type) {\n", switchParam)

	for _, elemType := range concreteTypes {
		dispatchName := buildDispatchFuncName(pf.Name, elemType)
		sliceType := "[]" + elemType

		fmt.Fprintf(buf, "\tcase %s:\n", sliceType)

		// Build the call with type assertions
		if len(pf.Returns) > 0 {
			fmt.Fprintf(buf, "\t\treturn ")
		} else {
			fmt.Fprintf(buf, "\t\t")
		}
		fmt.Fprintf(buf, "%s(", dispatchName)

		for i, param := range pf.Params {
			if i > 0 {
				fmt.Fprintf(buf, ", ")
			}
			// Check if this parameter needs type assertion
			if strings.HasPrefix(param.Type, "[]T") || param.Type == "[]T" {
				fmt.Fprintf(buf, "any(%s).(%s)", param.Name, sliceType)
			} else if param.Type == "T" {
				fmt.Fprintf(buf, "any(%s).(%s)", param.Name, elemType)
			} else {
				fmt.Fprintf(buf, "%s", param.Name)
			}
		}
		fmt.Fprintf(buf, ")\n")
	}

	fmt.Fprintf(buf, "\t}\n")

	// Add default return if function has return values
	if len(pf.Returns) > 0 {
		fmt.Fprintf(buf, "\tpanic(\"unreachable\")\n")
	}

	fmt.Fprintf(buf, "}\n\n")
}

// buildDispatchFuncName creates the public function name for the dispatcher.
// BaseSigmoid[float32] -> SigmoidFloat32
// BaseSigmoid[float64] -> SigmoidFloat64
func buildDispatchFuncName(baseName, elemType string) string {
	// Remove "Base" prefix
	name := strings.TrimPrefix(baseName, "Base")

	// Always add type suffix for explicit dispatch functions
	name = name + strings.Title(elemType)

	return name
}

// buildGenericFuncName creates the generic function name (without type suffix).
// BaseSigmoid -> Sigmoid
func buildGenericFuncName(baseName string) string {
	return strings.TrimPrefix(baseName, "Base")
}

// buildFuncSignature builds a function signature string from ParsedFunc.
func buildFuncSignature(pf ParsedFunc, elemType string) string {
	var buf bytes.Buffer

	// Parameters
	buf.WriteString("(")
	for i, param := range pf.Params {
		if i > 0 {
			buf.WriteString(", ")
		}
		paramType := specializeType(param.Type, pf.TypeParams, elemType)
		buf.WriteString(param.Name)
		buf.WriteString(" ")
		buf.WriteString(paramType)
	}
	buf.WriteString(")")

	// Return values
	if len(pf.Returns) > 0 {
		buf.WriteString(" ")
		if len(pf.Returns) == 1 && pf.Returns[0].Name == "" {
			// Single unnamed return
			retType := specializeType(pf.Returns[0].Type, pf.TypeParams, elemType)
			buf.WriteString(retType)
		} else {
			// Multiple or named returns
			buf.WriteString("(")
			for i, ret := range pf.Returns {
				if i > 0 {
					buf.WriteString(", ")
				}
				if ret.Name != "" {
					buf.WriteString(ret.Name)
					buf.WriteString(" ")
				}
				retType := specializeType(ret.Type, pf.TypeParams, elemType)
				buf.WriteString(retType)
			}
			buf.WriteString(")")
		}
	}

	return buf.String()
}

// getBaseFilename extracts the base filename without extension.
func getBaseFilename(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return base[:len(base)-len(ext)]
}
