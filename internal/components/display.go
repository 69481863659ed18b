package components

// displayAttributes is the read-only rendering shared by MoneyColumn and MoneyEntry.
type displayAttributes struct {
	moneyAttributes
	hideSymbol bool
	short      bool
}

// FormatState is the read hook: stored minor units to display text with the
// currency symbol interpolated, or the compact K/M/B/T form when short.
func (d *displayAttributes) FormatState(rc ResolveContext, raw any) (string, error) {
	f, err := d.Formatter(rc)
	if err != nil {
		return "", err
	}

	render := f.FormatWithSymbol
	switch {
	case d.short && d.hideSymbol:
		render = f.FormatShortNumber
	case d.short:
		render = f.FormatShort
	case d.hideSymbol:
		render = f.FormatAmount
	}
	return d.formatStored(f, raw, render), nil
}

// IsShort reports whether the compact form is used.
func (d *displayAttributes) IsShort() bool {
	return d.short
}

// ShowsCurrencySymbol reports whether the symbol is rendered.
func (d *displayAttributes) ShowsCurrencySymbol() bool {
	return !d.hideSymbol
}

// MoneyColumn is a table column for amounts stored as minor units.
type MoneyColumn struct {
	displayAttributes
}

// NewMoneyColumn creates a column for the attribute at name.
func NewMoneyColumn(name string, opts ...Option) (*MoneyColumn, error) {
	attrs, err := newMoneyAttributes(name, opts)
	if err != nil {
		return nil, err
	}
	return &MoneyColumn{displayAttributes{moneyAttributes: attrs}}, nil
}

// Short switches the column to the compact K/M/B/T form.
func (c *MoneyColumn) Short() *MoneyColumn {
	c.short = true
	return c
}

// HideCurrencySymbol drops the symbol from the rendered value.
func (c *MoneyColumn) HideCurrencySymbol(hide bool) *MoneyColumn {
	c.hideSymbol = hide
	return c
}

// Alignment is the cell alignment the host should use.
func (c *MoneyColumn) Alignment() string {
	return "end"
}

// MoneyEntry is a read-only entry for amounts stored as minor units.
type MoneyEntry struct {
	displayAttributes
}

// NewMoneyEntry creates an entry for the attribute at name.
func NewMoneyEntry(name string, opts ...Option) (*MoneyEntry, error) {
	attrs, err := newMoneyAttributes(name, opts)
	if err != nil {
		return nil, err
	}
	return &MoneyEntry{displayAttributes{moneyAttributes: attrs}}, nil
}

// Short switches the entry to the compact K/M/B/T form.
func (e *MoneyEntry) Short() *MoneyEntry {
	e.short = true
	return e
}

// HideCurrencySymbol drops the symbol from the rendered value.
func (e *MoneyEntry) HideCurrencySymbol(hide bool) *MoneyEntry {
	e.hideSymbol = hide
	return e
}
