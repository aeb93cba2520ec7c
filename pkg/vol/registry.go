package vol

import "HistVol/pkg/series"

// Estimator names one of the supported volatility estimators.
type Estimator string

const (
	EstimatorCloseToClose    Estimator = "close_to_close"
	EstimatorParkinson       Estimator = "parkinson"
	EstimatorGarmanKlass     Estimator = "garman_klass"
	EstimatorGarmanKlassExt  Estimator = "garman_klass_ext"
	EstimatorRodgersSatchell Estimator = "rodgers_satchell"
	EstimatorYangZhang       Estimator = "yang_zhang"
)

// All returns every supported estimator in a stable order.
func All() []Estimator {
	return []Estimator{
		EstimatorCloseToClose,
		EstimatorParkinson,
		EstimatorGarmanKlass,
		EstimatorGarmanKlassExt,
		EstimatorRodgersSatchell,
		EstimatorYangZhang,
	}
}

// IsValid returns true if e names a supported estimator.
func IsValid(e Estimator) bool {
	switch e {
	case EstimatorCloseToClose, EstimatorParkinson, EstimatorGarmanKlass,
		EstimatorGarmanKlassExt, EstimatorRodgersSatchell, EstimatorYangZhang:
		return true
	default:
		return false
	}
}

// Compute runs the named estimator over one OHLC window. The second return is
// false for an unknown estimator.
func Compute(e Estimator, o, h, l, c series.Series) (float64, bool) {
	switch e {
	case EstimatorCloseToClose:
		return CloseToClose(c), true
	case EstimatorParkinson:
		return Parkinson(h, l), true
	case EstimatorGarmanKlass:
		return GarmanKlass(o, h, l, c), true
	case EstimatorGarmanKlassExt:
		return GarmanKlassExt(o, h, l, c), true
	case EstimatorRodgersSatchell:
		return RodgersSatchell(o, h, l, c), true
	case EstimatorYangZhang:
		return YangZhang(o, h, l, c), true
	default:
		return 0, false
	}
}
