package daqmx

/* Custom scale entry points. Scales are created by name in the driver and
referenced from channels via DAQmx_Val_FromCustomScale plus the scale name. */

var (
	pCreateLinScale        = newProc("DAQmxCreateLinScale")
	pCreateMapScale        = newProc("DAQmxCreateMapScale")
	pCreatePolynomialScale = newProc("DAQmxCreatePolynomialScale")
	pCreateTableScale      = newProc("DAQmxCreateTableScale")

	pCalculateReversePolyCoeff = newProc("DAQmxCalculateReversePolyCoeff")
)

// API call to create a scale applying y = slope*x + intercept
// scaledUnits: free text label for the scaled values
func APICreateLinScale(name string, slope float64, yIntercept float64, preScaledUnits Units, scaledUnits string) (Status, error) {
	return pCreateLinScale.call(cstr(name), f64arg(slope), f64arg(yIntercept), uintptr(preScaledUnits), cstr(scaledUnits))
}

// API call to create a scale mapping one value range linearly onto another
func APICreateMapScale(name string, prescaledMin float64, prescaledMax float64, scaledMin float64, scaledMax float64, preScaledUnits Units, scaledUnits string) (Status, error) {
	return pCreateMapScale.call(cstr(name), f64arg(prescaledMin), f64arg(prescaledMax), f64arg(scaledMin), f64arg(scaledMax), uintptr(preScaledUnits), cstr(scaledUnits))
}

// API call to create a polynomial scale. Both directions are needed; use
// APICalculateReversePolyCoeff when only one is known.
func APICreatePolynomialScale(name string, forwardCoeffs []float64, reverseCoeffs []float64, preScaledUnits Units, scaledUnits string) (Status, error) {
	return pCreatePolynomialScale.call(cstr(name), sliceArg(forwardCoeffs), uintptr(len(forwardCoeffs)),
		sliceArg(reverseCoeffs), uintptr(len(reverseCoeffs)), uintptr(preScaledUnits), cstr(scaledUnits))
}

// API call to create a scale interpolating between table value pairs
func APICreateTableScale(name string, prescaledVals []float64, scaledVals []float64, preScaledUnits Units, scaledUnits string) (Status, error) {
	return pCreateTableScale.call(cstr(name), sliceArg(prescaledVals), uintptr(len(prescaledVals)),
		sliceArg(scaledVals), uintptr(len(scaledVals)), uintptr(preScaledUnits), cstr(scaledUnits))
}

// API call to fit the reverse polynomial for a known forward polynomial
// numPointsToCompute: sampling points for the fit, -1 for the driver default
// reversePolyOrder: order of the fitted polynomial, -1 to match the forward
// order; reverseCoeffs must hold order+1 values.
func APICalculateReversePolyCoeff(forwardCoeffs []float64, minValX float64, maxValX float64, numPointsToCompute int32, reversePolyOrder int32, reverseCoeffs []float64) (Status, error) {
	return pCalculateReversePolyCoeff.call(sliceArg(forwardCoeffs), uintptr(len(forwardCoeffs)),
		f64arg(minValX), f64arg(maxValX), uintptr(numPointsToCompute), uintptr(reversePolyOrder), sliceArg(reverseCoeffs))
}
