// File: paramstore/controller.go
package paramstore

// Checker is the base view of a registered parameter: its name and the
// ability to run its rule chain against a handler.
type Checker[K comparable] interface {
	Name() K
	Check(h Access[K]) error
}

// Parameter is a named parameter of declared type T with an ordered chain of
// validation rules. Rules run in registration order; the first failing rule
// aborts the chain. The registration methods return the parameter itself so
// chains read as one expression:
//
//	Insert[int](ctrl, "timeout").Range(1, 60).Default(30)
type Parameter[T any, K comparable] struct {
	name  K
	rules []Rule[K]
}

// Name returns the parameter's name, the key used to look it up in the
// handler.
func (p *Parameter[T, K]) Name() K { return p.name }

// Required appends a rule failing with MissingParameterError when the
// parameter is absent from the handler.
func (p *Parameter[T, K]) Required() *Parameter[T, K] {
	return p.Add(requiredRule[K]{name: p.name})
}

// Range appends an inclusive bounds check. An absent parameter passes;
// combine with Required or Default to enforce presence.
func (p *Parameter[T, K]) Range(low, high T) *Parameter[T, K] {
	return p.Add(rangeRule[T, K]{name: p.name, low: low, high: high})
}

// Default appends a rule inserting v when the parameter is absent. A present
// value is never overwritten.
func (p *Parameter[T, K]) Default(v T) *Parameter[T, K] {
	return p.Add(defaultRule[T, K]{name: p.name, value: v})
}

// TypeChecked appends a rule failing with TypeMismatchError when a present
// value does not hold the declared type T.
func (p *Parameter[T, K]) TypeChecked() *Parameter[T, K] {
	return p.Add(typeRule[T, K]{name: p.name})
}

// Add appends an arbitrary rule to the chain. This is the extension point
// for rule kinds the package does not provide.
func (p *Parameter[T, K]) Add(r Rule[K]) *Parameter[T, K] {
	p.rules = append(p.rules, r)
	return p
}

// Check runs the rule chain in registration order. The first failure aborts
// the chain and is returned unchanged.
func (p *Parameter[T, K]) Check(h Access[K]) error {
	for _, r := range p.rules {
		if err := r.Check(h); err != nil {
			return err
		}
	}
	return nil
}

// Controller owns a set of named parameters and validates them as a unit
// against a handler. Like the stores, it is a single-owner configuration-time
// structure.
type Controller[K comparable] struct {
	params map[K]Checker[K]
}

// NewController creates an empty controller.
func NewController[K comparable]() *Controller[K] {
	return &Controller[K]{params: make(map[K]Checker[K])}
}

// Insert registers a fresh parameter of declared type T under name and
// returns it for rule registration. A prior parameter under the same name is
// replaced; last write wins.
//
// Insert is a function rather than a method because the parameter type T is
// not part of the controller's type.
func Insert[T any, K comparable](c *Controller[K], name K) *Parameter[T, K] {
	p := &Parameter[T, K]{name: name}
	c.params[name] = p
	return p
}

// Get returns the base view of the parameter registered under name.
func (c *Controller[K]) Get(name K) (Checker[K], bool) {
	p, ok := c.params[name]
	return p, ok
}

// Len reports the number of registered parameters.
func (c *Controller[K]) Len() int { return len(c.params) }

// Check runs every registered parameter's rule chain against h. Iteration
// follows the map's native (unordered) order; the first failing parameter
// aborts the scan, leaving the remaining parameters unchecked for this pass.
func (c *Controller[K]) Check(h Access[K]) error {
	for _, p := range c.params {
		if err := p.Check(h); err != nil {
			return err
		}
	}
	return nil
}

// Merge moves the parameters of src into c and drains src. An empty
// destination adopts src's map wholesale; a non-empty destination is
// overwritten per key, keeping its parameters that src does not name. The
// asymmetry mirrors move-assignment of the controller as a whole versus
// merging one controller into another.
func (c *Controller[K]) Merge(src *Controller[K]) {
	if src == nil {
		return
	}
	if len(c.params) == 0 {
		c.params = src.params
	} else {
		for name, p := range src.params {
			c.params[name] = p
		}
	}
	src.params = make(map[K]Checker[K])
}
