package parser

import "fmt"

// EntryBlock selects the block to translate.
// With a name, it is the body of the top-level function of that name.
// Without one, it is the body of the first statement when that statement is a
// function definition (the conventional entry function), else the module body.
func EntryBlock(mod *Module, name string) ([]Stmt, error) {
	if name != "" {
		var defined []string
		for _, stmt := range mod.Body {
			switch s := stmt.(type) {
			case *FunctionDef:
				if s.Name == name {
					return s.Body, nil
				}
				defined = append(defined, s.Name)
			case *AsyncFunctionDef:
				if s.Name == name {
					return s.Body, nil
				}
				defined = append(defined, s.Name)
			}
		}
		return nil, fmt.Errorf("entry function %q not found%s", name, didYouMean(name, defined))
	}
	if len(mod.Body) > 0 {
		if fn, ok := mod.Body[0].(*FunctionDef); ok {
			return fn.Body, nil
		}
	}
	return mod.Body, nil
}
