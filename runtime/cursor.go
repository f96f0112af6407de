package runtime

// PreserveCursor keeps the caret of the control with the given id across
// passes. Every pass replaces that control with a fresh element, which
// would otherwise lose focus and caret position. If the control is focused
// when a pass starts, its offset is restored on the new element afterwards.
// Calling it again for the same id has no effect.
func (c *Controller) PreserveCursor(id string) {
	if c.preserved[id] {
		return
	}
	if c.preserved == nil {
		c.preserved = make(map[string]bool)
	}
	c.preserved[id] = true

	offset := -1

	c.BeforeRender(func() {
		offset = -1
		el, ok := c.doc.Active()
		if !ok || el.ID() != id {
			return
		}
		if off, err := c.doc.CursorOffset(id); err == nil {
			offset = off
		}
	})

	c.AfterRender(func() {
		if offset < 0 {
			return
		}
		if err := c.doc.SetCursorOffset(id, offset); err != nil {
			c.log.Warn("restore cursor", "id", id, "err", err)
		}
	})
}
