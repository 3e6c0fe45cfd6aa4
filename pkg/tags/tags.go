package tags

import (
	"fmt"
	"sync"

	"github.com/flosch/pongo2/v6"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// Register installs both tags into pongo2's process-wide tag table. It is
// idempotent; the tags live for the lifetime of the process.
func Register() error {
	registerOnce.Do(func() {
		if err := pongo2.RegisterTag("get_latest_objects", latestObjectsParser); err != nil {
			registerErr = fmt.Errorf("tags: register get_latest_objects: %w", err)
			return
		}
		if err := pongo2.RegisterTag("retrieve_object", retrieveObjectParser); err != nil {
			registerErr = fmt.Errorf("tags: register retrieve_object: %w", err)
		}
	})
	return registerErr
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func MustRegister() {
	if err := Register(); err != nil {
		panic(err)
	}
}

// tagArgs is the parsed argument tuple both tags share. It is built once at
// compile time and never mutated afterwards.
type tagArgs struct {
	// label is the "app.Model" name resolved against the registry per render.
	label string
	// arg is the count or primary key, kept as its literal token text.
	arg string
	// varname is the context variable the render result is bound to.
	varname string
}

// parseTagArgs consumes `<app>.<Model> <arg> as <varname>` and nothing else.
// All shape violations surface here, before any model access can happen.
func parseTagArgs(name string, arguments *pongo2.Parser) (tagArgs, *pongo2.Error) {
	var args tagArgs

	appToken := arguments.MatchType(pongo2.TokenIdentifier)
	if appToken == nil || arguments.Match(pongo2.TokenSymbol, ".") == nil {
		return args, arguments.Error(fmt.Sprintf("first argument to '%s' tag must be of the form app.Model", name), nil)
	}
	modelToken := arguments.MatchType(pongo2.TokenIdentifier)
	if modelToken == nil {
		return args, arguments.Error(fmt.Sprintf("first argument to '%s' tag must be of the form app.Model", name), nil)
	}
	args.label = appToken.Val + "." + modelToken.Val

	argToken := arguments.Current()
	if argToken == nil {
		return args, arguments.Error(fmt.Sprintf("'%s' tag takes four arguments", name), nil)
	}
	switch argToken.Typ {
	case pongo2.TokenNumber, pongo2.TokenString, pongo2.TokenIdentifier:
		args.arg = argToken.Val
	default:
		return args, arguments.Error(fmt.Sprintf("second argument to '%s' tag must be a literal value", name), nil)
	}
	arguments.Consume()

	// The lexer may classify 'as' as a keyword or a plain identifier.
	if arguments.Match(pongo2.TokenKeyword, "as") == nil && arguments.Match(pongo2.TokenIdentifier, "as") == nil {
		return args, arguments.Error(fmt.Sprintf("third argument to '%s' tag must be 'as'", name), nil)
	}

	nameToken := arguments.MatchType(pongo2.TokenIdentifier)
	if nameToken == nil {
		return args, arguments.Error(fmt.Sprintf("'%s' tag needs a variable name after 'as'", name), nil)
	}
	args.varname = nameToken.Val

	if arguments.Remaining() > 0 {
		return args, arguments.Error(fmt.Sprintf("'%s' tag takes four arguments", name), nil)
	}
	return args, nil
}
