package fleet

import (
	"fmt"
	"slices"

	"logistics/internal/pkg/errs"
)

// LicenceClass is a driving licence category.
type LicenceClass string

const (
	LicenceB   LicenceClass = "B"
	LicenceBE  LicenceClass = "BE"
	LicenceC   LicenceClass = "C"
	LicenceC1  LicenceClass = "C1"
	LicenceCE  LicenceClass = "CE"
	LicenceC1E LicenceClass = "C1E"
)

// AllLicenceClasses lists the supported categories in canonical order.
func AllLicenceClasses() []LicenceClass {
	return []LicenceClass{LicenceB, LicenceBE, LicenceC, LicenceC1, LicenceCE, LicenceC1E}
}

func (c LicenceClass) Validate() error {
	if !slices.Contains(AllLicenceClasses(), c) {
		return errs.NewValueIsInvalidErrorWithCause("licence_classes", fmt.Errorf("%q is not a licence class", string(c)))
	}
	return nil
}

// normalizeLicences validates, de-duplicates and orders the given classes canonically.
func normalizeLicences(classes []LicenceClass) ([]LicenceClass, error) {
	for _, c := range classes {
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}

	out := make([]LicenceClass, 0, len(classes))
	for _, c := range AllLicenceClasses() {
		if slices.Contains(classes, c) {
			out = append(out, c)
		}
	}
	return out, nil
}
