package hal

// LimbsBinary dispatches the limbs j < resSize of res = a op b:
// both on the limbs present in a and b, onlyA and onlyB on the limbs
// present in a single operand and zero on the remaining limbs of res.
func LimbsBinary(resSize, aSize, bSize int, both, onlyA, onlyB, zero func(j int)) {
	for j := 0; j < resSize; j++ {
		switch {
		case j < aSize && j < bSize:
			both(j)
		case j < aSize:
			onlyA(j)
		case j < bSize:
			onlyB(j)
		default:
			zero(j)
		}
	}
}

// LimbsUnary dispatches the limbs j < resSize of res = op(a):
// apply on the limbs present in a and zero on the remaining limbs of res.
func LimbsUnary(resSize, aSize int, apply, zero func(j int)) {
	for j := 0; j < resSize; j++ {
		if j < aSize {
			apply(j)
		} else {
			zero(j)
		}
	}
}
