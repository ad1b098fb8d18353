package scoring

// CompareReferenceDate exports compareReferenceDate for testing
var CompareReferenceDate = compareReferenceDate
