package location

var builtinRegions = []Region{
	{Name: "Delhi", Cities: []string{"New Delhi", "North Delhi", "South Delhi", "East Delhi", "West Delhi"}},
	{Name: "Maharashtra", Cities: []string{"Mumbai", "Pune", "Nagpur", "Nashik", "Aurangabad", "Solapur", "Kolhapur", "Sangli"}},
	{Name: "Karnataka", Cities: []string{"Bangalore", "Mysore", "Hubli", "Mangalore", "Belgaum", "Gulbarga", "Davangere", "Shimoga"}},
	{Name: "Tamil Nadu", Cities: []string{"Chennai", "Coimbatore", "Madurai", "Tiruchirappalli", "Salem", "Tirunelveli", "Erode", "Vellore"}},
	{Name: "West Bengal", Cities: []string{"Kolkata", "Howrah", "Durgapur", "Asansol", "Siliguri", "Malda", "Bardhaman", "Kharagpur"}},
	{Name: "Telangana", Cities: []string{"Hyderabad", "Warangal", "Nizamabad", "Karimnagar", "Khammam", "Mahbubnagar", "Nalgonda", "Adilabad"}},
	{Name: "Rajasthan", Cities: []string{"Jaipur", "Jodhpur", "Udaipur", "Kota", "Bikaner", "Ajmer", "Bharatpur", "Alwar"}},
	{Name: "Gujarat", Cities: []string{"Ahmedabad", "Surat", "Vadodara", "Rajkot", "Bhavnagar", "Jamnagar", "Gandhinagar", "Anand"}},
	{Name: "Punjab", Cities: []string{"Chandigarh", "Ludhiana", "Amritsar", "Jalandhar", "Patiala", "Bathinda", "Mohali", "Pathankot"}},
	{Name: "Haryana", Cities: []string{"Gurgaon", "Faridabad", "Panipat", "Ambala", "Yamunanagar", "Rohtak", "Hisar", "Karnal"}},
	{Name: "Uttar Pradesh", Cities: []string{"Lucknow", "Kanpur", "Ghaziabad", "Agra", "Varanasi", "Meerut", "Allahabad", "Bareilly"}},
	{Name: "Madhya Pradesh", Cities: []string{"Bhopal", "Indore", "Gwalior", "Jabalpur", "Ujjain", "Sagar", "Dewas", "Satna"}},
	{Name: "Andhra Pradesh", Cities: []string{"Visakhapatnam", "Vijayawada", "Guntur", "Nellore", "Kurnool", "Rajahmundry", "Tirupati", "Kadapa"}},
	{Name: "Kerala", Cities: []string{"Thiruvananthapuram", "Kochi", "Kozhikode", "Thrissur", "Kollam", "Palakkad", "Alappuzha", "Malappuram"}},
	{Name: "Odisha", Cities: []string{"Bhubaneswar", "Cuttack", "Rourkela", "Brahmapur", "Sambalpur", "Puri", "Balasore", "Baripada"}},
}
