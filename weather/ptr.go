package weather

// Float64Ptr is a helper function to get a pointer to a float64 value
func Float64Ptr(f float64) *float64 {
	return &f
}

// IntPtr is a helper function to get a pointer to an int value
func IntPtr(i int) *int {
	return &i
}
