package domain

// ProgressFunc reports listing progress while pages are followed.
// Called once per page: (100, 1302), (200, 1302), ...
type ProgressFunc func(loaded, total int)
