package services

// notificationTemplate renders one application into the operator
// notification email, sectioned into personal, address and vehicle info.
const notificationTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h2 style="color: #c81533;">New Vehicle Wrap Application</h2>
    <div style="background: #f8f9fa; padding: 20px; border-radius: 10px;">
        <h3 style="color: #2d3436;">Personal Information</h3>
        <p><strong>Name:</strong> {{.FirstName}} {{.LastName}}</p>
        <p><strong>Email:</strong> {{.Email}}</p>
        <p><strong>Phone:</strong> {{.Phone}}</p>

        <h3 style="color: #2d3436; margin-top: 20px;">Address Information</h3>
        <p><strong>Street Address:</strong> {{.Address}}</p>
        <p><strong>City:</strong> {{.City}}</p>
        <p><strong>State:</strong> {{.State}}</p>
        <p><strong>ZIP Code:</strong> {{.ZipCode}}</p>

        <h3 style="color: #2d3436; margin-top: 20px;">Vehicle Information</h3>
        <p><strong>Car Make:</strong> {{.CarMake}}</p>
        <p><strong>Car Model:</strong> {{.CarModel}}</p>
        <p><strong>Car Year:</strong> {{.CarYear}}</p>
    </div>
</div>`
