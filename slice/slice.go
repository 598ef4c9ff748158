package slice

import "strings"

// FindIndex returns the first index of the ref that matches ref t
func FindIndex[T comparable](vs []T, t T) int {
	for i, v := range vs {
		if v == t {
			return i
		}
	}

	return -1
}

// Contains returns true if the value exists in the slice and false otherwise
func Contains[T comparable](vs []T, t T) bool {
	return FindIndex(vs, t) > -1
}

// ContainsFold reports whether any of the fields contains sub, ignoring case.
func ContainsFold(sub string, fields ...string) bool {
	sub = strings.ToLower(sub)

	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), sub) {
			return true
		}
	}

	return false
}

// Filter returns the items for which keep is true, preserving order.
// The result is never nil.
func Filter[T any](vs []T, keep func(T) bool) []T {
	res := make([]T, 0, len(vs))

	for _, v := range vs {
		if keep(v) {
			res = append(res, v)
		}
	}

	return res
}

// Paginate returns the 1-based page of vs. A non positive perPage returns every item.
// Pages past the end are empty.
func Paginate[T any](vs []T, page, perPage int) []T {
	if perPage <= 0 {
		return vs
	}

	if page < 1 {
		page = 1
	}

	start := (page - 1) * perPage
	if start >= len(vs) {
		return []T{}
	}

	end := start + perPage
	if end > len(vs) {
		end = len(vs)
	}

	return vs[start:end]
}

// Unique returns the distinct values of slice in first-seen order.
func Unique[T comparable](slice []T) []T {
	uniqMap := make(map[T]struct{})

	var uniqSlice []T

	for _, v := range slice {
		if _, val := uniqMap[v]; !val {
			uniqMap[v] = struct{}{}

			uniqSlice = append(uniqSlice, v)
		}
	}

	return uniqSlice
}
