package recursion

// Sum adds the elements of a non-empty vector, last index first.
func Sum(v []int) (int, error) {
	if len(v) == 0 {
		return 0, ErrEmptyVector
	}
	return sum(v, len(v)-1), nil
}

func sum(v []int, n int) int {
	if n == 0 {
		return v[0]
	}
	return sum(v, n-1) + v[n]
}

// Product multiplies the elements of a non-empty vector.
func Product(v []int) (int, error) {
	if len(v) == 0 {
		return 0, ErrEmptyVector
	}
	return product(v, len(v)-1), nil
}

func product(v []int, n int) int {
	if n == 0 {
		return v[0]
	}
	return v[n] * product(v, n-1)
}

// Min returns the smallest element of a non-empty vector.
func Min(v []int) (int, error) {
	if len(v) == 0 {
		return 0, ErrEmptyVector
	}
	last := len(v) - 1
	return minFrom(v, last, v[last]), nil
}

func minFrom(v []int, n, least int) int {
	if v[n] < least {
		least = v[n]
	}
	if n == 0 {
		return least
	}
	return minFrom(v, n-1, least)
}

// MatrixSum adds every cell of a square matrix, walking each row right to
// left and the rows bottom to top.
func MatrixSum(m [][]int) (int, error) {
	order := len(m)
	if order == 0 {
		return 0, ErrEmptyVector
	}
	for i, row := range m {
		if len(row) != order {
			return 0, domainErr("MatrixSum", "a square matrix", i, len(row))
		}
	}
	return matrixSum(m, order-1, order-1), nil
}

func matrixSum(m [][]int, row, col int) int {
	if row == 0 && col == 0 {
		return m[0][0]
	}
	if col < 0 {
		return matrixSum(m, row-1, len(m)-1)
	}
	return m[row][col] + matrixSum(m, row, col-1)
}
