package worldcal

import "time"

// umalquraFirstYear is the Hijri year described by umalquraYears[0].
const umalquraFirstYear = 1318

// umalquraYears is the published Umm al-Qura table for 1318-1500 AH. Each row
// holds the month-length flags (bit m-1 set when month m has 30 days) and the
// Gregorian date of 1 Muharram. The last row only anchors the end of 1500.
var umalquraYears = [...]umalquraYear{
	{0x2ea, date{1900, time.April, 30}},
	{0x6e9, date{1901, time.April, 19}},
	// 1320
	{0xed2, date{1902, time.April, 9}},
	{0xea4, date{1903, time.March, 30}},
	{0xd4a, date{1904, time.March, 18}},
	{0xa96, date{1905, time.March, 7}},
	{0x536, date{1906, time.February, 24}},
	{0xab5, date{1907, time.February, 13}},
	{0xdaa, date{1908, time.February, 3}},
	{0xba4, date{1909, time.January, 23}},
	{0xb49, date{1910, time.January, 12}},
	{0xa93, date{1911, time.January, 1}},
	// 1330
	{0x52b, date{1911, time.December, 21}},
	{0xa57, date{1912, time.December, 9}},
	{0x4b6, date{1913, time.November, 29}},
	{0xab5, date{1914, time.November, 18}},
	{0x5aa, date{1915, time.November, 8}},
	{0xd55, date{1916, time.October, 27}},
	{0xd2a, date{1917, time.October, 17}},
	{0xa56, date{1918, time.October, 6}},
	{0x4ae, date{1919, time.September, 25}},
	{0x95d, date{1920, time.September, 13}},
	// 1340
	{0x2ec, date{1921, time.September, 3}},
	{0x6d5, date{1922, time.August, 23}},
	{0x6aa, date{1923, time.August, 13}},
	{0x555, date{1924, time.August, 1}},
	{0x4ab, date{1925, time.July, 21}},
	{0x95b, date{1926, time.July, 10}},
	{0x2ba, date{1927, time.June, 30}},
	{0x575, date{1928, time.June, 18}},
	{0xbb2, date{1929, time.June, 8}},
	{0x764, date{1930, time.May, 29}},
	// 1350
	{0x749, date{1931, time.May, 18}},
	{0x655, date{1932, time.May, 6}},
	{0x2ab, date{1933, time.April, 25}},
	{0x55b, date{1934, time.April, 14}},
	{0xada, date{1935, time.April, 4}},
	{0x6d4, date{1936, time.March, 24}},
	{0xec9, date{1937, time.March, 13}},
	{0xd92, date{1938, time.March, 3}},
	{0xd25, date{1939, time.February, 20}},
	{0xa4d, date{1940, time.February, 9}},
	// 1360
	{0x2ad, date{1941, time.January, 28}},
	{0x56d, date{1942, time.January, 17}},
	{0xb6a, date{1943, time.January, 7}},
	{0xb52, date{1943, time.December, 28}},
	{0xaa5, date{1944, time.December, 16}},
	{0xa4b, date{1945, time.December, 5}},
	{0x497, date{1946, time.November, 24}},
	{0x937, date{1947, time.November, 13}},
	{0x2b6, date{1948, time.November, 2}},
	{0x575, date{1949, time.October, 22}},
	// 1370
	{0xd6a, date{1950, time.October, 12}},
	{0xd52, date{1951, time.October, 2}},
	{0xa96, date{1952, time.September, 20}},
	{0x92d, date{1953, time.September, 9}},
	{0x25d, date{1954, time.August, 29}},
	{0x4dd, date{1955, time.August, 18}},
	{0xada, date{1956, time.August, 7}},
	{0x5d4, date{1957, time.July, 28}},
	{0xda9, date{1958, time.July, 17}},
	{0xd52, date{1959, time.July, 7}},
	// 1380
	{0xaaa, date{1960, time.June, 25}},
	{0x4d6, date{1961, time.June, 14}},
	{0x9b6, date{1962, time.June, 3}},
	{0x374, date{1963, time.May, 24}},
	{0x769, date{1964, time.May, 12}},
	{0x752, date{1965, time.May, 2}},
	{0x6a5, date{1966, time.April, 21}},
	{0x54b, date{1967, time.April, 10}},
	{0xaab, date{1968, time.March, 29}},
	{0x55a, date{1969, time.March, 19}},
	// 1390
	{0xad5, date{1970, time.March, 8}},
	{0xdd2, date{1971, time.February, 26}},
	{0xda4, date{1972, time.February, 16}},
	{0xd49, date{1973, time.February, 4}},
	{0xa95, date{1974, time.January, 24}},
	{0x52d, date{1975, time.January, 13}},
	{0xa5d, date{1976, time.January, 2}},
	{0x55a, date{1976, time.December, 22}},
	{0xad5, date{1977, time.December, 11}},
	{0x6aa, date{1978, time.December, 1}},
	// 1400
	{0xe95, date{1979, time.November, 20}},
	{0x52b, date{1980, time.November, 9}},
	{0x257, date{1981, time.October, 29}},
	{0x4ae, date{1982, time.October, 18}},
	{0x976, date{1983, time.October, 7}},
	{0x56c, date{1984, time.September, 26}},
	{0xb55, date{1985, time.September, 15}},
	{0xaaa, date{1986, time.September, 5}},
	{0xa55, date{1987, time.August, 25}},
	{0x4ad, date{1988, time.August, 13}},
	// 1410
	{0x95d, date{1989, time.August, 2}},
	{0x2da, date{1990, time.July, 23}},
	{0x5d9, date{1991, time.July, 12}},
	{0xdb2, date{1992, time.July, 1}},
	{0xba4, date{1993, time.June, 21}},
	{0xb4a, date{1994, time.June, 10}},
	{0xa55, date{1995, time.May, 30}},
	{0x2b5, date{1996, time.May, 18}},
	{0x575, date{1997, time.May, 7}},
	{0xb6a, date{1998, time.April, 27}},
	// 1420
	{0xbd2, date{1999, time.April, 17}},
	{0xbc4, date{2000, time.April, 6}},
	{0xb89, date{2001, time.March, 26}},
	{0xa95, date{2002, time.March, 15}},
	{0x52d, date{2003, time.March, 4}},
	{0x5ad, date{2004, time.February, 21}},
	{0xb6a, date{2005, time.February, 10}},
	{0x6d4, date{2006, time.January, 31}},
	{0xdc9, date{2007, time.January, 20}},
	{0xd92, date{2008, time.January, 10}},
	// 1430
	{0xaa6, date{2008, time.December, 29}},
	{0x956, date{2009, time.December, 18}},
	{0x2ae, date{2010, time.December, 7}},
	{0x56d, date{2011, time.November, 26}},
	{0x36a, date{2012, time.November, 15}},
	{0xb55, date{2013, time.November, 4}},
	{0xaaa, date{2014, time.October, 25}},
	{0x94d, date{2015, time.October, 14}},
	{0x49d, date{2016, time.October, 2}},
	{0x95d, date{2017, time.September, 21}},
	// 1440
	{0x2ba, date{2018, time.September, 11}},
	{0x5b5, date{2019, time.August, 31}},
	{0x5aa, date{2020, time.August, 20}},
	{0xd55, date{2021, time.August, 9}},
	{0xa9a, date{2022, time.July, 30}},
	{0x92e, date{2023, time.July, 19}},
	{0x26e, date{2024, time.July, 7}},
	{0x55d, date{2025, time.June, 26}},
	{0xada, date{2026, time.June, 16}},
	{0x6d4, date{2027, time.June, 6}},
	// 1450
	{0x6a5, date{2028, time.May, 25}},
	{0x54b, date{2029, time.May, 14}},
	{0xa97, date{2030, time.May, 3}},
	{0x54e, date{2031, time.April, 23}},
	{0xaae, date{2032, time.April, 11}},
	{0x5ac, date{2033, time.April, 1}},
	{0xba9, date{2034, time.March, 21}},
	{0xd92, date{2035, time.March, 11}},
	{0xb25, date{2036, time.February, 28}},
	{0x64b, date{2037, time.February, 16}},
	// 1460
	{0xcab, date{2038, time.February, 5}},
	{0x55a, date{2039, time.January, 26}},
	{0xb55, date{2040, time.January, 15}},
	{0x6d2, date{2041, time.January, 4}},
	{0xea5, date{2041, time.December, 24}},
	{0xe4a, date{2042, time.December, 14}},
	{0xa95, date{2043, time.December, 3}},
	{0x52d, date{2044, time.November, 21}},
	{0xaad, date{2045, time.November, 10}},
	{0x36c, date{2046, time.October, 31}},
	// 1470
	{0x759, date{2047, time.October, 20}},
	{0x6d2, date{2048, time.October, 9}},
	{0x695, date{2049, time.September, 28}},
	{0x52d, date{2050, time.September, 17}},
	{0xa5b, date{2051, time.September, 6}},
	{0x4ba, date{2052, time.August, 26}},
	{0x9ba, date{2053, time.August, 15}},
	{0x3b4, date{2054, time.August, 5}},
	{0xb69, date{2055, time.July, 25}},
	{0xb52, date{2056, time.July, 14}},
	// 1480
	{0xaa6, date{2057, time.July, 3}},
	{0x4b6, date{2058, time.June, 22}},
	{0x96d, date{2059, time.June, 11}},
	{0x2ec, date{2060, time.May, 31}},
	{0x6d9, date{2061, time.May, 20}},
	{0xeb2, date{2062, time.May, 10}},
	{0xd54, date{2063, time.April, 30}},
	{0xd2a, date{2064, time.April, 18}},
	{0xa56, date{2065, time.April, 7}},
	{0x4ae, date{2066, time.March, 27}},
	// 1490
	{0x96d, date{2067, time.March, 16}},
	{0xd6a, date{2068, time.March, 5}},
	{0xb54, date{2069, time.February, 23}},
	{0xb29, date{2070, time.February, 12}},
	{0xa93, date{2071, time.February, 1}},
	{0x52b, date{2072, time.January, 21}},
	{0xa57, date{2073, time.January, 9}},
	{0x536, date{2073, time.December, 30}},
	{0xab5, date{2074, time.December, 19}},
	{0x6aa, date{2075, time.December, 9}},
	// 1500
	{0xe93, date{2076, time.November, 27}},
	{0x000, date{2077, time.November, 17}},
}
