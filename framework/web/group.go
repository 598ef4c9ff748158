package web

// Group wraps the App for wrapping multiple handlers with middlewares.
type Group struct {
	app         *App
	prefixPath  string
	middlewares []Middleware
}

// NewGroup initializes a group of http handlers, with a bunch of middlewares.
func NewGroup(app *App, prefixPath string, mw ...Middleware) *Group {
	return &Group{
		app,
		prefixPath,
		mw,
	}
}

func (g *Group) with(mw []Middleware) []Middleware {
	middlewares := make([]Middleware, 0, len(g.middlewares)+len(mw))
	middlewares = append(middlewares, g.middlewares...)

	return append(middlewares, mw...)
}

// Post mounts a http POST handler within the group.
func (g *Group) Post(path string, handler Handler, mw ...Middleware) {
	g.app.Post(g.prefixPath+path, handler, g.with(mw)...)
}

// Get mounts a http GET handler within the group.
func (g *Group) Get(path string, handler Handler, mw ...Middleware) {
	g.app.Get(g.prefixPath+path, handler, g.with(mw)...)
}

// Put mounts a http PUT handler within the group.
func (g *Group) Put(path string, handler Handler, mw ...Middleware) {
	g.app.Put(g.prefixPath+path, handler, g.with(mw)...)
}

// Delete mounts a http DELETE handler within the group.
func (g *Group) Delete(path string, handler Handler, mw ...Middleware) {
	g.app.Delete(g.prefixPath+path, handler, g.with(mw)...)
}

// Patch mounts a http PATCH handler within the group.
func (g *Group) Patch(path string, handler Handler, mw ...Middleware) {
	g.app.Patch(g.prefixPath+path, handler, g.with(mw)...)
}

// NewSubgroup initializes a subgroup, within a group, with a bunch of additional middlewares.
func (g *Group) NewSubgroup(prefixPath string, mw ...Middleware) *Group {
	return &Group{
		g.app,
		g.prefixPath + prefixPath,
		g.with(mw),
	}
}
