package model

type ContentType struct {
	Name        string
	RootPath    string
	SearchDepth int
}

type ContentTypes struct {
	byName map[string]*ContentType
	names  []string
}

func NewContentTypes(cts ...*ContentType) *ContentTypes {
	result := &ContentTypes{
		byName: make(map[string]*ContentType, len(cts)),
	}

	for _, ct := range cts {
		if _, ok := result.byName[ct.Name]; ok {
			continue
		}

		result.byName[ct.Name] = ct
		result.names = append(result.names, ct.Name)
	}

	return result
}

// Get returns ErrContentTypeNotFound for names not configured.
func (c *ContentTypes) Get(name string) (*ContentType, error) {
	ct, ok := c.byName[name]
	if !ok {
		return nil, ErrContentTypeNotFound
	}

	return ct, nil
}

// List returns the content types in configuration order.
func (c *ContentTypes) List() []*ContentType {
	result := make([]*ContentType, 0, len(c.names))
	for _, n := range c.names {
		result = append(result, c.byName[n])
	}
	return result
}
