package model

type Folder struct {
	Name          string
	Path          string
	SizeBytes     int64
	SizeMegabytes float64
}
