package utils

func StringPtr(s string) *string { return &s }

func IntPtr(i int) *int { return &i }
