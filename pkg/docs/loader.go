package docs

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"
)

// LoadedClass pairs a class object with its syntax node.
type LoadedClass struct {
	Class *Class
	Node  *ClassNode
}

// Loader parses Go source directories into host class objects. Each struct
// type declaration becomes one class whose body lists its field declarations
// followed by its methods, in source order.
type Loader struct {
	fset *token.FileSet
}

// NewLoader allocates a new instance.
func NewLoader() *Loader {
	return &Loader{fset: token.NewFileSet()}
}

// LoadDirectory walks dir recursively and parses every Go file it finds,
// ignoring vendor directories and test files. Classes are returned in file
// walk order, declaration order within a file.
func (l *Loader) LoadDirectory(dir string) ([]*LoadedClass, error) {
	var files []*ast.File
	err := filepath.WalkDir(dir, func(path string, de os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if de.IsDir() {
			if de.Name() == "vendor" {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(de.Name(), ".go") || strings.HasSuffix(de.Name(), "_test.go") {
			return nil
		}
		file, err := parser.ParseFile(l.fset, path, nil, parser.ParseComments)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		files = append(files, file)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return l.collect(files), nil
}

func (l *Loader) collect(files []*ast.File) []*LoadedClass {
	var loaded []*LoadedClass
	byName := map[string]*SyntaxClass{}

	for _, file := range files {
		pkgName := file.Name.Name
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}
			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				structType, ok := typeSpec.Type.(*ast.StructType)
				if !ok {
					continue
				}
				lc := l.newClass(pkgName, typeSpec, structType, genDecl)
				syntax, _ := lc.Node.Syntax()
				byName[typeSpec.Name.Name] = syntax
				loaded = append(loaded, lc)
			}
		}
	}

	// Attach methods to the classes collected above.
	for _, file := range files {
		for _, decl := range file.Decls {
			funcDecl, ok := decl.(*ast.FuncDecl)
			if !ok || funcDecl.Recv == nil || len(funcDecl.Recv.List) == 0 {
				continue
			}
			syntax, ok := byName[receiverTypeName(funcDecl.Recv.List[0].Type)]
			if !ok {
				continue
			}
			syntax.Body = append(syntax.Body, &MethodDecl{
				Name: funcDecl.Name.Name,
				Doc:  funcDecl.Doc.Text(),
			})
		}
	}
	return loaded
}

func (l *Loader) newClass(pkgName string, typeSpec *ast.TypeSpec, structType *ast.StructType, genDecl *ast.GenDecl) *LoadedClass {
	name := typeSpec.Name.Name
	cls := &Class{Path: pkgName + "." + name, Name: name}
	if doc := declDoc(typeSpec, genDecl); doc != "" {
		cls.Docstring = NewDocstring(Cleandoc(doc), cls)
	}

	syntax := &SyntaxClass{Name: name}
	for _, field := range structType.Fields.List {
		if len(field.Names) == 0 {
			continue // embedded field, surfaced through the runtime object
		}
		typeStr := types.ExprString(field.Type)
		doc := field.Doc.Text()
		if doc == "" {
			doc = field.Comment.Text()
		}
		for _, ident := range field.Names {
			syntax.Body = append(syntax.Body, &FieldDecl{
				Name: ident.Name,
				Type: typeStr,
				Doc:  doc,
			})
		}
	}
	return &LoadedClass{Class: cls, Node: NewSyntaxNode(syntax)}
}

// declDoc prefers the doc comment on the type spec itself and falls back to
// the enclosing declaration group's.
func declDoc(typeSpec *ast.TypeSpec, genDecl *ast.GenDecl) string {
	if typeSpec.Doc != nil {
		return typeSpec.Doc.Text()
	}
	if genDecl.Doc != nil {
		return genDecl.Doc.Text()
	}
	return ""
}

func receiverTypeName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.StarExpr:
		return receiverTypeName(e.X)
	case *ast.Ident:
		return e.Name
	case *ast.IndexExpr: // generic receiver
		return receiverTypeName(e.X)
	case *ast.IndexListExpr:
		return receiverTypeName(e.X)
	default:
		return ""
	}
}
