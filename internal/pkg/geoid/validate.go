package geoid

import (
	"errors"
	"fmt"
)

// Validate проверяет инварианты таблиц: уникальность названий и идентификаторов
// внутри таблицы и попадание каждого id в диапазон своего уровня.
// Возвращает все найденные нарушения одной ошибкой.
func Validate() error {
	var errs []error
	for _, t := range []*table{regions, departments, interMunicipalities, communes} {
		errs = append(errs, t.validate()...)
	}
	return errors.Join(errs...)
}

func (t *table) validate() []error {
	var errs []error

	names := make(map[string]struct{}, len(t.entries))
	ids := make(map[int]string, len(t.entries))

	for _, e := range t.entries {
		if e.name == "" {
			errs = append(errs, fmt.Errorf("%s: empty name for id %d", t.level, e.id))
		}
		if _, dup := names[e.name]; dup {
			errs = append(errs, fmt.Errorf("%s: duplicate name %q", t.level, e.name))
		}
		names[e.name] = struct{}{}

		if other, dup := ids[e.id]; dup {
			errs = append(errs, fmt.Errorf("%s: id %d used by both %q and %q", t.level, e.id, other, e.name))
		} else {
			ids[e.id] = e.name
		}

		if !t.level.ContainsID(e.id) {
			errs = append(errs, fmt.Errorf("%s: id %d of %q is outside the level range", t.level, e.id, e.name))
		}
	}

	return errs
}
