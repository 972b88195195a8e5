package linkctl

import "fmt"

// FactoryResetType mirrors lte_lc_factory_reset_type.
type FactoryResetType int

const (
	FactoryResetAll  FactoryResetType = 0
	FactoryResetUser FactoryResetType = 1
)

// FormatFactoryReset builds the AT%XFACTORYRESET= command for typ. The
// modem only accepts this while not activated (AT+CFUN=4 or lower), a
// precondition linkctl does not enforce itself.
func FormatFactoryReset(typ FactoryResetType) string {
	return fmt.Sprintf("AT%%XFACTORYRESET=%d", typ)
}
