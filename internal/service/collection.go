package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/portfolio/internal/db"
	"gorm.io/gorm"
)

// ListOptions controls which rows a collection listing returns.
type ListOptions struct {
	// IncludeHidden returns rows with is_visible = false as well (admin views).
	IncludeHidden bool
}

// Collection is the gorm-backed repository shared by every ordered,
// visibility-gated entity kind.
type Collection[T any, P interface {
	*T
	db.Sortable
	db.Toggleable
}] struct {
	db       *gorm.DB
	name     string
	notFound error
}

func newCollection[T any, P interface {
	*T
	db.Sortable
	db.Toggleable
}](gdb *gorm.DB, name string, notFound error) *Collection[T, P] {
	return &Collection[T, P]{db: gdb, name: name, notFound: notFound}
}

// List returns rows ordered by sort position. Public listings only see visible rows.
func (c *Collection[T, P]) List(opts ListOptions) ([]T, error) {
	query := c.db.Model(new(T))
	if !opts.IncludeHidden {
		query = query.Where("is_visible = ?", true)
	}

	var items []T
	if err := query.Order("sort_order ASC").Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, storeError("list "+c.name, err)
	}
	return items, nil
}

// Get loads one row by identifier.
func (c *Collection[T, P]) Get(id string) (*T, error) {
	var item T
	if err := c.db.Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, c.notFound
		}
		return nil, storeError("get "+c.name, err)
	}
	return &item, nil
}

// Count returns the collection size including hidden rows.
func (c *Collection[T, P]) Count() (int, error) {
	var count int64
	if err := c.db.Model(new(T)).Count(&count).Error; err != nil {
		return 0, storeError("count "+c.name, err)
	}
	return int(count), nil
}

// Create appends item: its position becomes the current collection size.
func (c *Collection[T, P]) Create(item P) error {
	count, err := c.Count()
	if err != nil {
		return err
	}
	item.SetPosition(count)

	if err := c.db.Create(item).Error; err != nil {
		return storeError("create "+c.name, err)
	}
	return nil
}

// Update loads the row, applies mutate and saves it. A mutate error aborts
// without writing.
func (c *Collection[T, P]) Update(id string, mutate func(P) error) (*T, error) {
	item, err := c.Get(id)
	if err != nil {
		return nil, err
	}

	position := P(item).Position()
	if err := mutate(P(item)); err != nil {
		return nil, err
	}
	P(item).SetPosition(position)

	if err := c.db.Save(item).Error; err != nil {
		return nil, storeError("update "+c.name, err)
	}
	return item, nil
}

// Delete removes the row permanently. Other rows keep their positions.
func (c *Collection[T, P]) Delete(id string) error {
	result := c.db.Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return storeError("delete "+c.name, result.Error)
	}
	if result.RowsAffected == 0 {
		return c.notFound
	}
	return nil
}

// ToggleVisibility flips is_visible on one row and returns the updated row.
func (c *Collection[T, P]) ToggleVisibility(id string) (*T, error) {
	item, err := c.Get(id)
	if err != nil {
		return nil, err
	}

	visible := !P(item).Visible()
	if err := c.db.Model(item).Update("is_visible", visible).Error; err != nil {
		return nil, storeError("toggle "+c.name+" visibility", err)
	}
	P(item).SetVisible(visible)
	return item, nil
}

// Move exchanges the position of the row at index with its neighbor in the
// admin ordering and returns the new ordering. Tied positions are renumbered
// in the same transaction. Boundary moves write nothing.
func (c *Collection[T, P]) Move(index int, direction Direction) ([]T, error) {
	items, err := c.List(ListOptions{IncludeHidden: true})
	if err != nil {
		return nil, err
	}

	reordered, changed, err := MoveAdjacent[T, P](items, index, direction)
	if err != nil {
		return nil, err
	}
	if len(changed) == 0 {
		return reordered, nil
	}

	err = c.db.Transaction(func(tx *gorm.DB) error {
		for i := range changed {
			row := P(&changed[i])
			if err := tx.Model(new(T)).Where("id = ?", row.Key()).Update("sort_order", row.Position()).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, storeError("move "+c.name, err)
	}
	return reordered, nil
}

// Reorder rewrites positions to 0..n-1 over the whole collection. Listed ids
// come first in the given order; unknown and repeated ids are ignored. Rows
// not listed follow in their current order.
func (c *Collection[T, P]) Reorder(ids []string) ([]T, error) {
	items, err := c.List(ListOptions{IncludeHidden: true})
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(items))
	for i := range items {
		byID[P(&items[i]).Key()] = i
	}

	ordered := make([]T, 0, len(items))
	placed := make(map[string]bool, len(items))
	for _, id := range ids {
		i, ok := byID[strings.TrimSpace(id)]
		if !ok || placed[P(&items[i]).Key()] {
			continue
		}
		placed[P(&items[i]).Key()] = true
		ordered = append(ordered, items[i])
	}
	for i := range items {
		if !placed[P(&items[i]).Key()] {
			ordered = append(ordered, items[i])
		}
	}

	err = c.db.Transaction(func(tx *gorm.DB) error {
		for index := range ordered {
			row := P(&ordered[index])
			if row.Position() == index {
				continue
			}
			if err := tx.Model(new(T)).Where("id = ?", row.Key()).Update("sort_order", index).Error; err != nil {
				return fmt.Errorf("reorder %s: %w", c.name, err)
			}
			row.SetPosition(index)
		}
		return nil
	})
	if err != nil {
		return nil, storeError("reorder "+c.name, err)
	}
	return ordered, nil
}
