package tracking

// Bucket maps a value to the label of the range it falls into, so precise
// figures never leave the process. bounds holds the inclusive upper bound of
// each label except the last, which catches everything above.
func Bucket(value int, bounds []int, labels []string) string {
	for i, bound := range bounds {
		if value <= bound {
			return labels[i]
		}
	}

	return labels[len(labels)-1]
}

// BucketRate buckets a percentage, such as a CSV import success rate.
func BucketRate(rate int) string {
	return Bucket(rate, []int{49, 69, 89}, []string{"0-49%", "50-69%", "70-89%", "90-100%"})
}

// BucketRows buckets an imported or budgeted row count.
func BucketRows(rows int) string {
	return Bucket(rows, []int{100, 1000, 10000}, []string{"1-100", "101-1000", "1001-10000", "10000+"})
}
