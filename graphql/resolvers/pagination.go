package resolvers

import gqlmodels "warehouse.GO/graphql/models"

const maxPageSize = 200

func defaultPageSize(p int32) int32 {
	switch {
	case p <= 0:
		return 20
	case p > maxPageSize:
		return maxPageSize
	}
	return p
}

func defaultCurrentPage(p int32) int32 {
	if p > 0 {
		return p
	}
	return 1
}

func paginate[T any](items []T, currentPage, pageSize int32) ([]T, *gqlmodels.PageInfo) {
	ps, cp := defaultPageSize(pageSize), defaultCurrentPage(currentPage)
	total := int32(len(items))
	info := &gqlmodels.PageInfo{PageSize: ps, CurrentPage: cp, TotalPages: (total + ps - 1) / ps}
	start := (cp - 1) * ps
	end := start + ps
	if start >= total {
		return items[:0], info
	}
	if end > total {
		end = total
	}
	return items[start:end], info
}
