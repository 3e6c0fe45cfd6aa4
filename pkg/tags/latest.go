package tags

import (
	"context"
	"fmt"
	"strconv"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-contenttags/pkg/modelreg"
)

// latestObjectsNode binds the first <count> objects of a model, in the
// source's default ordering, to a context variable.
type latestObjectsNode struct {
	args tagArgs
}

func latestObjectsParser(doc *pongo2.Parser, start *pongo2.Token, arguments *pongo2.Parser) (pongo2.INodeTag, *pongo2.Error) {
	args, err := parseTagArgs("get_latest_objects", arguments)
	if err != nil {
		return nil, err
	}
	return &latestObjectsNode{args: args}, nil
}

func (n *latestObjectsNode) Execute(ctx *pongo2.ExecutionContext, writer pongo2.TemplateWriter) *pongo2.Error {
	src, ok := modelreg.Resolve(n.args.label)
	if !ok {
		return nil
	}
	lister, ok := src.(modelreg.Lister)
	if !ok {
		return nil
	}

	count, err := strconv.Atoi(n.args.arg)
	if err != nil {
		return ctx.Error(fmt.Sprintf("get_latest_objects: count %q is not an integer", n.args.arg), nil)
	}

	objects, err := lister.Latest(context.Background(), count)
	if err != nil {
		return ctx.Error(fmt.Sprintf("get_latest_objects: list %s: %v", n.args.label, err), nil)
	}

	ctx.Private[n.args.varname] = objects
	return nil
}
