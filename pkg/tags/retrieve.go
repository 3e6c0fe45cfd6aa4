package tags

import (
	"context"
	"fmt"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-contenttags/pkg/modelreg"
)

// retrieveObjectNode binds a single object, looked up by primary key, to a
// context variable. Zero or several matches leave the context untouched.
type retrieveObjectNode struct {
	args tagArgs
}

func retrieveObjectParser(doc *pongo2.Parser, start *pongo2.Token, arguments *pongo2.Parser) (pongo2.INodeTag, *pongo2.Error) {
	args, err := parseTagArgs("retrieve_object", arguments)
	if err != nil {
		return nil, err
	}
	return &retrieveObjectNode{args: args}, nil
}

func (n *retrieveObjectNode) Execute(ctx *pongo2.ExecutionContext, writer pongo2.TemplateWriter) *pongo2.Error {
	src, ok := modelreg.Resolve(n.args.label)
	if !ok {
		return nil
	}
	fetcher, ok := src.(modelreg.Fetcher)
	if !ok {
		return nil
	}

	result, err := fetcher.Get(context.Background(), n.args.arg)
	if err != nil {
		return ctx.Error(fmt.Sprintf("retrieve_object: get %s pk=%s: %v", n.args.label, n.args.arg, err), nil)
	}
	if result.Outcome != modelreg.OutcomeFound {
		return nil
	}

	ctx.Private[n.args.varname] = result.Object
	return nil
}
