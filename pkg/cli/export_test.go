package cli

// PrintDashboard exports printDashboard for testing
var PrintDashboard = printDashboard
