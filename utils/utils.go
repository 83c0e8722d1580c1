package utils

//Populates integer slice with index values
func FillSliceWithIdxInt(values []int) {
	for i := range values {
		values[i] = i
	}
}

//Returns the inclusive integer range [lo, hi].
//Empty when hi < lo
func IntRange(lo, hi int) []int {
	if hi < lo {
		return nil
	}
	result := make([]int, hi-lo+1)
	for i := range result {
		result[i] = lo + i
	}
	return result
}

//Returns cartesian product of specified
//2d array, last dimension varies fastest.
//Empty if any dimension is empty
func CartProductInt(values [][]int) [][]int {
	if len(values) == 0 {
		return nil
	}
	for _, val := range values {
		if len(val) == 0 {
			return nil
		}
	}

	pos := make([]int, len(values))
	var result [][]int

	for pos[0] < len(values[0]) {
		temp := make([]int, len(values))
		for j := 0; j < len(values); j++ {
			temp[j] = values[j][pos[j]]
		}
		result = append(result, temp)
		pos[len(values)-1]++
		for k := len(values) - 1; k >= 1; k-- {
			if pos[k] >= len(values[k]) {
				pos[k] = 0
				pos[k-1]++
			} else {
				break
			}
		}
	}
	return result
}

//Searches int slice for specified integer
func ContainsInt(q int, vals []int) bool {
	for _, val := range vals {
		if val == q {
			return true
		}
	}
	return false
}
