package extract

// LapChartPrompt is sent alongside the uploaded chart. It describes the table
// layout validated by ValidateCSV.
const LapChartPrompt = `Output the data in a csv format

The user wants to extract the table data from the provided image into a CSV format.

1.  **Identify the table:** The image contains a large table titled "Race Lap Chart".
2.  **Determine columns:** The columns are labeled "POS", "1", "2", "3", ..., "20". The "POS" column contains lap numbers ("GRID", "LAP 1", "LAP 2", etc.).
3.  **Determine rows:** Each row represents a lap (starting from "GRID" which is the starting grid, then "LAP 1" ).
4.  **Extract data:** Go through each row, from "GRID" , and extract the values for each corresponding position (columns 1 to 20).
5.  **Handle special cases:** Notice the empty cells and cells with boxes around them. The OCR seems to handle them correctly as numbers. The boxes likely indicate pit stops or position changes, but for CSV extraction, just the numbers are needed.
6.  **Format as CSV:** Arrange the extracted data with commas separating the values in each row and a newline character separating the rows. The first row should be the header row ("POS", "1", "2", ..., "20").

**Data Extraction Plan:**
- Read the header row: POS, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20
- Read GRID row:
- Read LAP 1 row:
- ... and so on for each lap

- Ensure the number of columns matches the header for each row.`
