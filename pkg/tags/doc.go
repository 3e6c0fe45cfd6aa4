// Package tags implements the two content-retrieval template tags:
//
//	{% get_latest_objects app.Model count as varname %}
//	{% retrieve_object app.Model pk as varname %}
//
// Both tags split their work across a parser function and a render node, the
// host engine's convention: the parser validates the argument shape once at
// template-compile time, the node queries the model registry on every render
// and writes a single variable into the template-private context.
//
// Malformed tag usage fails template compilation. Missing data degrades
// silently: an unknown model label, a source without the needed query
// capability, or a primary-key lookup that finds zero or several objects all
// leave the context untouched. A non-numeric count or a source-level failure
// aborts the render.
package tags
