package dom

import (
	"sort"

	"heuristicheck/internal/domain"
)

// Mark annotates h with a severity and label. Re-marking overwrites the previous annotation.
func (d *Document) Mark(h Handle, severity domain.Severity, label string) {
	if d.Node(h) == nil {
		return
	}
	d.mu.Lock()
	d.marks[h] = Mark{Label: label, Severity: severity, Highlighted: true}
	d.mu.Unlock()
}

// MarkOf returns the annotation of h.
func (d *Document) MarkOf(h Handle) (Mark, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	m, ok := d.marks[h]
	return m, ok
}

// Unhighlight drops the visual marking of h but keeps its label and metadata
// until the overlays are cleared.
func (d *Document) Unhighlight(h Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if m, ok := d.marks[h]; ok {
		m.Highlighted = false
		d.marks[h] = m
	}
}

// Marked returns the highlighted elements in document order.
func (d *Document) Marked() []Handle {
	d.mu.RLock()
	out := make([]Handle, 0, len(d.marks))
	for h, m := range d.marks {
		if m.Highlighted {
			out = append(out, h)
		}
	}
	d.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SetMeta records audit metadata for h.
func (d *Document) SetMeta(h Handle, m domain.AuditMeta) {
	d.mu.Lock()
	d.meta[h] = m
	d.mu.Unlock()
}

func (d *Document) MetaOf(h Handle) (domain.AuditMeta, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	m, ok := d.meta[h]
	return m, ok
}

// ClearOverlays removes every mark and all audit metadata, restoring a clean document.
func (d *Document) ClearOverlays() {
	d.mu.Lock()
	d.marks = make(map[Handle]Mark)
	d.meta = make(map[Handle]domain.AuditMeta)
	d.mu.Unlock()
}

// MarkedElements exports the highlighted elements for persistence and reports.
func (d *Document) MarkedElements() []domain.MarkedElement {
	handles := d.Marked()
	out := make([]domain.MarkedElement, 0, len(handles))
	for _, h := range handles {
		m, _ := d.MarkOf(h)
		el := domain.MarkedElement{
			Handle:     int(h),
			Descriptor: d.Descriptor(h),
			Severity:   m.Severity,
			Label:      m.Label,
		}
		if meta, ok := d.MetaOf(h); ok {
			meta := meta
			el.Meta = &meta
		}
		out = append(out, el)
	}
	return out
}
